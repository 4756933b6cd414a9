package guest

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/fakeutf8/errors"
)

// Instance is an instantiated guest module.
type Instance struct {
	mod      api.Module
	compiled wazero.CompiledModule
	mem      *Memory
}

// Memory returns the guest's exported memory.
func (i *Instance) Memory() *Memory {
	return i.mem
}

// Arena returns a fresh arena over the guest's current memory.
func (i *Instance) Arena() *Arena {
	return NewMemoryArena(i.mem)
}

// Call invokes an exported function with core values.
func (i *Instance) Call(ctx context.Context, name string, params ...uint64) ([]uint64, error) {
	if i.mod == nil {
		return nil, errors.NotInitialized(errors.PhaseGuest, "instance")
	}
	fn := i.mod.ExportedFunction(name)
	if fn == nil {
		return nil, errors.NotFound(errors.PhaseGuest, "export", name)
	}
	results, err := fn.Call(ctx, params...)
	if err != nil {
		return nil, errors.Trap(name, err)
	}
	return results, nil
}

func (i *Instance) Close(ctx context.Context) error {
	var firstErr error
	if i.mod != nil {
		if err := i.mod.Close(ctx); err != nil {
			firstErr = err
		}
		i.mod = nil
	}
	if i.compiled != nil {
		if err := i.compiled.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
		i.compiled = nil
	}
	if firstErr != nil {
		Logger().Warn("instance close failed", zap.Error(firstErr))
	}
	return firstErr
}
