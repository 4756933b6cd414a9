package guest

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/fakeutf8/errors"
)

// Engine compiles and instantiates guest modules.
type Engine struct {
	runtime wazero.Runtime
	seq     atomic.Uint64
	closed  atomic.Bool
}

// NewEngine creates a wazero-backed engine. cfg may be nil.
func NewEngine(ctx context.Context, cfg *Config) (*Engine, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	return &Engine{runtime: wazero.NewRuntimeWithConfig(ctx, runtimeCfg)}, nil
}

// Instantiate compiles wasm and instantiates it. The module must export its
// memory as "memory".
func (e *Engine) Instantiate(ctx context.Context, wasm []byte) (*Instance, error) {
	if e.closed.Load() {
		return nil, errors.NotInitialized(errors.PhaseGuest, "engine")
	}

	compiled, err := e.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Instantiation(err)
	}

	name := fmt.Sprintf("guest-%d", e.seq.Add(1))
	mod, err := e.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		_ = compiled.Close(ctx)
		return nil, errors.Instantiation(err)
	}

	mem := mod.ExportedMemory("memory")
	if mem == nil {
		_ = mod.Close(ctx)
		_ = compiled.Close(ctx)
		return nil, errors.NotFound(errors.PhaseGuest, "memory export", "memory")
	}

	return &Instance{
		mod:      mod,
		compiled: compiled,
		mem:      NewMemory(mem),
	}, nil
}

// Close releases all engine resources, including instances it created.
func (e *Engine) Close(ctx context.Context) error {
	if e.closed.Swap(true) {
		return nil
	}
	return e.runtime.Close(ctx)
}
