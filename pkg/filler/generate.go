package filler

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/mock_source.go github.com/animarr/animarr/pkg/filler Source
