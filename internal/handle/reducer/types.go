package reducer

import (
	"context"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockContext resolves outputs consumed by the block being reduced.
	BlockContext interface {
		FindOutput(ctx context.Context, ref model.OutputRef) (*model.Output, error)
	}
	// OutputPort accepts emitted commands. Send blocks under backpressure and
	// returns the context error once ctx is done.
	OutputPort interface {
		Send(ctx context.Context, cmd model.Command) error
	}
)
