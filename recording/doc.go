// Package recording captures segmented display draw calls for playback.
//
// A [Recorder] implements segdisplay.Painter: displays painted into it are
// stacked top to bottom and their polygons and circles stored as typed
// commands. [Recorder.FinishRecording] returns an immutable [Recording] that
// can be replayed to any [Backend] or to another painter.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(recording.WithPadding(8))
//	segdisplay.New(segdisplay.SevenSegment).PushString("12:34").Paint(rec)
//	r := rec.FinishRecording()
//
//	backend, err := recording.NewBackend("raster")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.FileBackend).SaveToFile("display.png")
//
// # Backend Registration
//
// Backends register themselves using the database/sql driver pattern.
// Import a backend package for its side effect:
//
//	import (
//	    _ "github.com/xTibor/segdisplay/recording/backends/raster" // "raster"
//	    _ "github.com/xTibor/segdisplay/recording/backends/svg"    // "svg"
//	)
package recording
