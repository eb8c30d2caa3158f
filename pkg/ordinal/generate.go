package ordinal

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/mock_resolver.go github.com/animarr/animarr/pkg/ordinal Resolver
