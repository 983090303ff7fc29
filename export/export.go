package export

import (
	"context"

	"github.com/hb9tf/profilegen/profile"
)

type Exporter interface {
	Write(context.Context, profile.Set) error
}
