package sim

// followPlayer moves the camera a fixed fraction of the way to the player
// every frame, independent of dt.
func followPlayer(w *World) {
	_, target, err := w.playerPosition()
	if err != nil {
		w.logSkip("camera", err)
		return
	}
	w.camera.Position = w.camera.Position.Lerp(target, w.cfg.Camera.Smoothing)
}
