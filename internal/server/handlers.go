package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/capture"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/pipeline"
)

// decodeJSON decodes an optional JSON body. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (a *App) currentStatus() statusResponse {
	return statusResponse{
		Snapshot:  a.pipe.Status(),
		Recording: a.recorder.Running(),
	}
}

func (a *App) status(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, a.currentStatus())
}

func (a *App) startPipeline(w http.ResponseWriter, r *http.Request) {
	var req startPipelineRequest
	if err := decodeJSON(r, &req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	audioPath := req.AudioPath
	if audioPath == "" {
		audioPath = a.layout.RecordingPath()
	}
	if _, err := os.Stat(audioPath); err != nil {
		a.respondError(w, http.StatusNotFound, "audio file not found")
		return
	}

	if a.pipe.Status().Running {
		a.respondError(w, http.StatusConflict, "already_running")
		return
	}

	go func() {
		ctx := context.Background()
		if err := a.pipe.Run(ctx, audioPath); err != nil {
			a.logger.Error(ctx, "Pipeline run failed: %v", err)
		}
	}()

	a.respondJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

func (a *App) stopPipeline(w http.ResponseWriter, r *http.Request) {
	if err := a.pipe.Stop(); err != nil {
		if errors.Is(err, pipeline.ErrNotRunning) {
			a.respondError(w, http.StatusConflict, "not_running")
			return
		}
		a.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.respondJSON(w, http.StatusOK, map[string]string{"status": "stopping"})
}

func (a *App) startRecording(w http.ResponseWriter, r *http.Request) {
	var req startRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	device := req.Device
	if device == "" {
		device = a.cfg.Recorder.Device
	}

	if err := a.recorder.Start(r.Context(), device, a.layout.RecordingPath()); err != nil {
		if errors.Is(err, capture.ErrAlreadyRecording) {
			a.respondError(w, http.StatusConflict, "already_recording")
			return
		}
		a.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.respondJSON(w, http.StatusOK, map[string]string{
		"status": "recording",
		"file":   a.layout.RecordingPath(),
	})
}

func (a *App) stopRecording(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := a.recorder.RequestStop(ctx); err != nil {
		if errors.Is(err, capture.ErrNotRecording) {
			a.respondError(w, http.StatusConflict, "not_recording")
			return
		}
		a.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	timeout := time.Duration(a.cfg.Recorder.StopTimeoutSeconds) * time.Second
	if err := a.recorder.WaitForExit(ctx, timeout); err != nil && !errors.Is(err, capture.ErrNotRecording) {
		a.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := map[string]string{
		"status": "stopped",
		"file":   a.layout.RecordingPath(),
	}
	if _, err := os.Stat(a.layout.RecordingPath()); err != nil {
		a.logger.Warn(ctx, "Recording file missing after stop: %s", a.layout.RecordingPath())
		resp["warning"] = "file_missing"
	}
	a.respondJSON(w, http.StatusOK, resp)
}

func (a *App) devices(w http.ResponseWriter, r *http.Request) {
	raw, devices, err := a.recorder.ListDevices(r.Context())
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if devices == nil {
		devices = []capture.Device{}
	}
	a.respondJSON(w, http.StatusOK, devicesResponse{Raw: raw, Devices: devices})
}

func (a *App) notes(w http.ResponseWriter, r *http.Request) {
	path := a.layout.NotesPath()
	if _, err := os.Stat(path); err != nil {
		a.respondError(w, http.StatusNotFound, "notes not compiled yet")
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	http.ServeFile(w, r, path)
}
