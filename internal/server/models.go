package server

import (
	"github.com/nguyentantai21042004/lecture-pipeline/internal/capture"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/pipeline"
)

type statusResponse struct {
	pipeline.Snapshot
	Recording bool `json:"is_recording"`
}

type startPipelineRequest struct {
	AudioPath string `json:"audio_path"`
}

type startRecordRequest struct {
	Device string `json:"device"`
}

type devicesResponse struct {
	Raw     string           `json:"raw"`
	Devices []capture.Device `json:"devices"`
}

type errorResponse struct {
	Error string `json:"error"`
}
