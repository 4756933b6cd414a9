package guest

import (
	"context"
	"errors"
	"testing"

	fuerrors "github.com/wippyai/fakeutf8/errors"
)

func newTestInstance(t *testing.T) *Instance {
	t.Helper()
	return newTestInstanceWithConfig(t, nil)
}

func newTestInstanceWithConfig(t *testing.T, cfg *Config) *Instance {
	t.Helper()
	ctx := context.Background()

	engine, err := NewEngine(ctx, cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	t.Cleanup(func() { _ = engine.Close(ctx) })

	inst, err := engine.Instantiate(ctx, BytesModule)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	t.Cleanup(func() { _ = inst.Close(ctx) })
	return inst
}

func TestMemory_ReadWrite(t *testing.T) {
	mem := newTestInstance(t).Memory()

	if mem.Size() != 65536 {
		t.Fatalf("Size = %d, want one page", mem.Size())
	}

	if err := mem.Write(100, []byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := mem.Read(100, 5)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("Read = %q, want hello", got)
	}

	if err := mem.WriteU16(200, 0x00B7); err != nil {
		t.Fatalf("WriteU16: %v", err)
	}
	raw, _ := mem.Read(200, 2)
	if raw[0] != 0xB7 || raw[1] != 0x00 {
		t.Errorf("WriteU16 not little-endian: % x", raw)
	}
	v, err := mem.ReadU16(200)
	if err != nil || v != 0x00B7 {
		t.Errorf("ReadU16 = %#x, %v", v, err)
	}
}

func TestMemory_Grow(t *testing.T) {
	mem := newTestInstanceWithConfig(t, &Config{MemoryLimitPages: 2}).Memory()

	prev, ok := mem.Grow(1)
	if !ok || prev != 1 {
		t.Fatalf("Grow(1) = %d, %v; want 1, true", prev, ok)
	}
	if mem.Size() != 2*pageSize {
		t.Errorf("Size = %d, want %d", mem.Size(), 2*pageSize)
	}
	if err := mem.Write(pageSize+10, []byte("x")); err != nil {
		t.Errorf("Write in grown page: %v", err)
	}

	if _, ok := mem.Grow(1); ok {
		t.Error("Grow past MemoryLimitPages succeeded")
	}
}

func TestMemory_OutOfBounds(t *testing.T) {
	mem := newTestInstance(t).Memory()
	want := &fuerrors.Error{Phase: fuerrors.PhaseGuest, Kind: fuerrors.KindOutOfBounds}

	tests := []struct {
		name string
		op   func() error
	}{
		{"read", func() error { _, err := mem.Read(65530, 10); return err }},
		{"write", func() error { return mem.Write(65535, []byte{1, 2}) }},
		{"read u16", func() error { _, err := mem.ReadU16(65535); return err }},
		{"write u16", func() error { return mem.WriteU16(65535, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			if !errors.Is(err, want) {
				t.Errorf("err = %v, want out_of_bounds", err)
			}
		})
	}
}

func TestEngine_Instantiate(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, &Config{MemoryLimitPages: 4})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer engine.Close(ctx)

	t.Run("invalid binary", func(t *testing.T) {
		_, err := engine.Instantiate(ctx, []byte("not wasm"))
		want := &fuerrors.Error{Phase: fuerrors.PhaseGuest, Kind: fuerrors.KindInstantiation}
		if !errors.Is(err, want) {
			t.Errorf("err = %v, want instantiation error", err)
		}
	})

	t.Run("no memory export", func(t *testing.T) {
		empty := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
		_, err := engine.Instantiate(ctx, empty)
		want := &fuerrors.Error{Phase: fuerrors.PhaseGuest, Kind: fuerrors.KindNotFound}
		if !errors.Is(err, want) {
			t.Errorf("err = %v, want not_found error", err)
		}
	})

	t.Run("twice", func(t *testing.T) {
		a, err := engine.Instantiate(ctx, BytesModule)
		if err != nil {
			t.Fatalf("first Instantiate: %v", err)
		}
		defer a.Close(ctx)
		b, err := engine.Instantiate(ctx, BytesModule)
		if err != nil {
			t.Fatalf("second Instantiate: %v", err)
		}
		defer b.Close(ctx)
	})
}

func TestEngine_Closed(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := engine.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := engine.Close(ctx); err != nil {
		t.Errorf("second Close: %v", err)
	}

	_, err = engine.Instantiate(ctx, BytesModule)
	want := &fuerrors.Error{Phase: fuerrors.PhaseGuest, Kind: fuerrors.KindNotInitialized}
	if !errors.Is(err, want) {
		t.Errorf("err = %v, want not_initialized", err)
	}
}

func TestInstance_Call(t *testing.T) {
	ctx := context.Background()
	inst := newTestInstance(t)
	mem := inst.Memory()

	if err := mem.Write(32, []byte("abc")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := inst.Call(ctx, CopyExport, 64, 32, 3); err != nil {
		t.Fatalf("Call: %v", err)
	}
	got, _ := mem.Read(64, 3)
	if string(got) != "abc" {
		t.Errorf("copied %q, want abc", got)
	}

	t.Run("missing export", func(t *testing.T) {
		_, err := inst.Call(ctx, "concat")
		want := &fuerrors.Error{Phase: fuerrors.PhaseGuest, Kind: fuerrors.KindNotFound}
		if !errors.Is(err, want) {
			t.Errorf("err = %v, want not_found", err)
		}
	})

	t.Run("trap", func(t *testing.T) {
		_, err := inst.Call(ctx, CopyExport, 65530, 0, 100)
		want := &fuerrors.Error{Phase: fuerrors.PhaseGuest, Kind: fuerrors.KindTrap}
		if !errors.Is(err, want) {
			t.Errorf("err = %v, want trap", err)
		}
	})
}

func TestInstance_CallAfterClose(t *testing.T) {
	ctx := context.Background()
	inst := newTestInstance(t)
	if err := inst.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	_, err := inst.Call(ctx, CopyExport, 0, 0, 0)
	want := &fuerrors.Error{Phase: fuerrors.PhaseGuest, Kind: fuerrors.KindNotInitialized}
	if !errors.Is(err, want) {
		t.Errorf("err = %v, want not_initialized", err)
	}
}
