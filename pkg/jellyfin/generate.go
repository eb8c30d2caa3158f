package jellyfin

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/mock_jellyfin_client.go github.com/animarr/animarr/pkg/jellyfin ClientInterface
