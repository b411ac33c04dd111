package fx

import (
	"github.com/mirrorworks/instamirror/internal/repositories/connection"
	"github.com/mirrorworks/instamirror/internal/repositories/syncrun"
	"go.uber.org/fx"
)

var Module = fx.Options(
	connection.Module,
	syncrun.Module,
)
