package discord

import (
	"testing"

	gameMocks "github.com/KirkDiggler/yatzy/internal/services/game/mocks"
	messagingMocks "github.com/KirkDiggler/yatzy/internal/services/messaging/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew_RoutesCommandsBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := zerolog.Nop()

	bot, err := New(&Config{
		Token:            "test-token",
		Logger:           &logger,
		GameService:      gameMocks.NewMockService(ctrl),
		MessagingService: messagingMocks.NewMockService(ctrl),
	})
	require.NoError(t, err)

	h, ok := bot.commands["yatzy"]
	require.True(t, ok)
	assert.Same(t, bot.yatzy, h)
	assert.Empty(t, bot.commandIDs)
}

func TestNew_ValidatesConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	gameService := gameMocks.NewMockService(ctrl)
	messagingService := messagingMocks.NewMockService(ctrl)

	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"no token", &Config{GameService: gameService, MessagingService: messagingService}},
		{"no game service", &Config{Token: "t", MessagingService: messagingService}},
		{"no messaging service", &Config{Token: "t", GameService: gameService}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.Error(t, err)
		})
	}
}
