package backend

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/gogpu/tess/gpucore/coretest"
)

type fakeDevice struct {
	*coretest.Recorder
	name   string
	closed bool
}

func (d *fakeDevice) Name() string { return d.name }
func (d *fakeDevice) Close()       { d.closed = true }

func fakeFactory(name string) Factory {
	return func() (Device, error) {
		return &fakeDevice{Recorder: coretest.New(), name: name}, nil
	}
}

func failingFactory(err error) Factory {
	return func() (Device, error) {
		return nil, err
	}
}

// withRegistry swaps in an empty registry for the duration of the test.
func withRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := backends
	backends = make(map[string]Factory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	})
}

func TestRegistryRegisterAndGet(t *testing.T) {
	withRegistry(t)
	Register("test", fakeFactory("test"))

	if !IsRegistered("test") {
		t.Fatal("test backend should be registered")
	}
	dev, err := Get("test")
	if err != nil {
		t.Fatalf("Get(test) error = %v", err)
	}
	if dev.Name() != "test" {
		t.Errorf("Get(test).Name() = %q, want %q", dev.Name(), "test")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	withRegistry(t)
	dev, err := Get("nonexistent")
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Get(nonexistent) error = %v, want ErrBackendNotAvailable", err)
	}
	if dev != nil {
		t.Error("Get(nonexistent) should return nil device")
	}
}

func TestRegistryGetFactoryError(t *testing.T) {
	withRegistry(t)
	errNoContext := errors.New("no current context")
	Register("broken", failingFactory(errNoContext))

	_, err := Get("broken")
	if !errors.Is(err, errNoContext) {
		t.Errorf("Get(broken) error = %v, want wrapped %v", err, errNoContext)
	}
}

func TestRegistryAvailableSorted(t *testing.T) {
	withRegistry(t)
	Register("zeta", fakeFactory("zeta"))
	Register("alpha", fakeFactory("alpha"))
	Register("mid", fakeFactory("mid"))

	want := []string{"alpha", "mid", "zeta"}
	if got := Available(); !slices.Equal(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestRegistryUnregister(t *testing.T) {
	withRegistry(t)
	Register("test", fakeFactory("test"))
	Unregister("test")
	if IsRegistered("test") {
		t.Error("test backend should be unregistered")
	}
}

func TestRegistryReplace(t *testing.T) {
	withRegistry(t)
	Register("test", fakeFactory("first"))
	Register("test", fakeFactory("second"))

	dev, err := Get("test")
	if err != nil {
		t.Fatal(err)
	}
	if dev.Name() != "second" {
		t.Errorf("Name() = %q, want replaced factory", dev.Name())
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	tests := []struct {
		name      string
		factories map[string]Factory
		want      string
	}{
		{
			name: "gl33 wins",
			factories: map[string]Factory{
				BackendNoop: fakeFactory(BackendNoop),
				BackendGL33: fakeFactory(BackendGL33),
				"aaa":       fakeFactory("aaa"),
			},
			want: BackendGL33,
		},
		{
			name: "failing gl33 falls back to noop",
			factories: map[string]Factory{
				BackendGL33: failingFactory(errors.New("no context")),
				BackendNoop: fakeFactory(BackendNoop),
			},
			want: BackendNoop,
		},
		{
			name: "unprioritized by name",
			factories: map[string]Factory{
				"zeta":  fakeFactory("zeta"),
				"alpha": fakeFactory("alpha"),
			},
			want: "alpha",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRegistry(t)
			for name, f := range tt.factories {
				Register(name, f)
			}
			dev, err := Default()
			if err != nil {
				t.Fatalf("Default() error = %v", err)
			}
			if dev.Name() != tt.want {
				t.Errorf("Default().Name() = %q, want %q", dev.Name(), tt.want)
			}
		})
	}
}

func TestRegistryDefaultNone(t *testing.T) {
	withRegistry(t)
	if _, err := Default(); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Default() error = %v, want ErrBackendNotAvailable", err)
	}

	errBroken := errors.New("broken")
	Register(BackendGL33, failingFactory(errBroken))
	_, err := Default()
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Default() error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestRegistryMustDefault(t *testing.T) {
	withRegistry(t)
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustDefault() should panic with no backends")
		}
	}()
	MustDefault()
}

func TestOpen(t *testing.T) {
	withRegistry(t)
	Register(BackendNoop, fakeFactory(BackendNoop))
	Register("other", fakeFactory("other"))

	dev, err := Open("")
	if err != nil || dev.Name() != BackendNoop {
		t.Errorf("Open(\"\") = %v, %v; want noop", dev, err)
	}
	dev, err = Open("other")
	if err != nil || dev.Name() != "other" {
		t.Errorf("Open(other) = %v, %v; want other", dev, err)
	}
	if _, err := Open("missing"); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Open(missing) error = %v", err)
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	withRegistry(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Register("test", fakeFactory("test"))
			_ = Available()
			_ = IsRegistered("test")
			_, _ = Get("test")
		}()
	}
	wg.Wait()
}
