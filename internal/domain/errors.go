package domain

import "errors"

var (
	ErrClientIDEmpty  = errors.New("client id is empty")
	ErrNotConnected   = errors.New("not connected")
	ErrPresetNotFound = errors.New("preset not found")
)
