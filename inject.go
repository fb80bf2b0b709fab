package park

// InjectInput queues a synthetic frame of input. Queued frames replace device
// input one per frame until the queue drains.
func (v *Viewer) InjectInput(in FrameInput) {
	v.injectQueue = append(v.injectQueue, in)
}

// InjectPress queues frames frames with the action held down. Minimum one.
func (v *Viewer) InjectPress(a Action, frames int) {
	frames = max(frames, 1)
	for i := 0; i < frames; i++ {
		v.InjectInput(FrameInput{Actions: Actions(a)})
	}
}

// InjectLook spreads a mouse movement of (dx, dy) evenly over frames frames.
func (v *Viewer) InjectLook(dx, dy float32, frames int) {
	frames = max(frames, 1)
	stepX, stepY := dx/float32(frames), dy/float32(frames)
	for i := 0; i < frames; i++ {
		v.InjectInput(FrameInput{MouseDX: stepX, MouseDY: stepY})
	}
}

// InjectScroll queues a single wheel event.
func (v *Viewer) InjectScroll(y float32) {
	v.InjectInput(FrameInput{Scroll: y})
}

// nextInput pops one injected frame, or polls the devices when the queue is
// empty.
func (v *Viewer) nextInput() FrameInput {
	if len(v.injectQueue) == 0 {
		if v.poller == nil {
			return FrameInput{}
		}
		return v.poller.poll()
	}
	in := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]
	return in
}
