package client

import (
	"context"

	"github.com/friber/move-to-go/internal/models"
)

// Receipt is what the remote system hands back for an accepted payload.
type Receipt struct {
	RemoteID string `json:"id"`
	TypeName string `json:"type_name"`
}

type PayloadSender interface {
	Send(ctx context.Context, payload *models.SchemaPayload) (*Receipt, error)
}
