package filters

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-responsive-iframe/internal/filters/iframe"
	schemavalidation "github.com/goliatone/go-responsive-iframe/internal/validation"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

type echoFilter struct {
	settings interfaces.FilterSettings
}

func (f echoFilter) Process(_ context.Context, text string, _ string) (string, error) {
	return text, nil
}

func (f echoFilter) Tips(string, bool) string { return "echo" }

func testDescriptor(id string, weight int) interfaces.FilterDescriptor {
	return interfaces.FilterDescriptor{
		ID:     id,
		Title:  "Echo",
		Type:   interfaces.FilterTypeTransformIrreversible,
		Weight: weight,
		Factory: func(settings interfaces.FilterSettings, _ interfaces.FilterDependencies) (interfaces.Filter, error) {
			return echoFilter{settings: settings}, nil
		},
	}
}

func TestManager_RegisterAndGet(t *testing.T) {
	manager := NewManager()

	if err := manager.Register(testDescriptor("echo", 0)); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	got, ok := manager.Get(" ECHO ")
	if !ok {
		t.Fatalf("Get() expected descriptor")
	}
	if got.ID != "echo" {
		t.Fatalf("Get() wrong descriptor, got %s", got.ID)
	}
}

func TestManager_Duplicate(t *testing.T) {
	manager := NewManager()
	if err := manager.Register(testDescriptor("echo", 0)); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if err := manager.Register(testDescriptor("echo", 0)); !errors.Is(err, ErrDuplicateFilter) {
		t.Fatalf("Register() expected ErrDuplicateFilter, got %v", err)
	}
}

func TestManager_RejectsInvalidDescriptors(t *testing.T) {
	cases := map[string]func(*interfaces.FilterDescriptor){
		"empty id":      func(d *interfaces.FilterDescriptor) { d.ID = "" },
		"bad id":        func(d *interfaces.FilterDescriptor) { d.ID = "bad id" },
		"missing title": func(d *interfaces.FilterDescriptor) { d.Title = "" },
		"unknown type":  func(d *interfaces.FilterDescriptor) { d.Type = "magic" },
		"nil factory":   func(d *interfaces.FilterDescriptor) { d.Factory = nil },
		"broken schema": func(d *interfaces.FilterDescriptor) { d.SettingsSchema = map[string]any{"type": 5} },
		"defaults fail schema": func(d *interfaces.FilterDescriptor) {
			d.SettingsSchema = map[string]any{"type": "object", "required": []any{"x"}}
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			desc := testDescriptor("echo", 0)
			mutate(&desc)
			if err := NewManager().Register(desc); !errors.Is(err, ErrInvalidDescriptor) {
				t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
			}
		})
	}
}

func TestManager_ListSortedByWeightThenID(t *testing.T) {
	manager := NewManager()
	for _, desc := range []interfaces.FilterDescriptor{
		testDescriptor("beta", 0),
		testDescriptor("alpha", 0),
		testDescriptor("first", -5),
	} {
		if err := manager.Register(desc); err != nil {
			t.Fatalf("Register %s: %v", desc.ID, err)
		}
	}

	got := manager.List()
	expectOrder := []string{"first", "alpha", "beta"}
	if len(got) != len(expectOrder) {
		t.Fatalf("List() expected %d descriptors, got %d", len(expectOrder), len(got))
	}
	for i, want := range expectOrder {
		if got[i].ID != want {
			t.Fatalf("List() order mismatch at %d: got %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestManager_Remove(t *testing.T) {
	manager := NewManager()
	_ = manager.Register(testDescriptor("echo", 0))

	manager.Remove("echo")
	manager.Remove("unknown")

	if _, ok := manager.Get("echo"); ok {
		t.Fatal("expected descriptor to be removed")
	}
}

func TestManager_CreateInstanceMergesDefaults(t *testing.T) {
	manager := NewManager()
	desc := testDescriptor("echo", 0)
	desc.DefaultSettings = interfaces.FilterSettings{"a": "1", "b": "2"}
	if err := manager.Register(desc); err != nil {
		t.Fatalf("Register: %v", err)
	}

	filter, err := manager.CreateInstance("echo", interfaces.FilterSettings{"b": "override"})
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	settings := filter.(echoFilter).settings
	if settings["a"] != "1" || settings["b"] != "override" {
		t.Fatalf("unexpected merged settings %v", settings)
	}
}

func TestManager_CreateInstanceUnknown(t *testing.T) {
	if _, err := NewManager().CreateInstance("missing", nil); !errors.Is(err, ErrFilterNotFound) {
		t.Fatalf("expected ErrFilterNotFound, got %v", err)
	}
}

func TestManager_CreateInstanceValidatesSettings(t *testing.T) {
	manager := NewManager()
	if err := RegisterBuiltIns(manager, []string{iframe.ID}); err != nil {
		t.Fatalf("RegisterBuiltIns: %v", err)
	}

	_, err := manager.CreateInstance(iframe.ID, interfaces.FilterSettings{
		iframe.SettingWrapperElement: "",
	})
	if !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
	if !errors.Is(err, schemavalidation.ErrSchemaValidation) {
		t.Fatalf("expected schema validation cause, got %v", err)
	}

	_, err = manager.CreateInstance(iframe.ID, interfaces.FilterSettings{"wrapper_colour": "red"})
	if !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected unknown setting to be rejected, got %v", err)
	}
}

func TestManager_CreateInstanceUsesDependencies(t *testing.T) {
	manager := NewManager(WithXSSFilter(fixedXSS("section")))
	if err := RegisterBuiltIns(manager, nil); err != nil {
		t.Fatalf("RegisterBuiltIns: %v", err)
	}

	filter, err := manager.CreateInstance(iframe.ID, nil)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	got, _ := filter.Process(context.Background(), `<iframe src="a"></iframe>`, "en")
	if got != `<section class="media-wrapper"><iframe src="a"></iframe></section>` {
		t.Fatalf("expected injected sanitizer to be used, got %q", got)
	}
}

func TestRegisterBuiltIns(t *testing.T) {
	manager := NewManager()
	if err := RegisterBuiltIns(manager, nil); err != nil {
		t.Fatalf("RegisterBuiltIns: %v", err)
	}
	if got := len(manager.List()); got != len(BuiltInDescriptors()) {
		t.Fatalf("expected %d built-ins, got %d", len(BuiltInDescriptors()), got)
	}

	if err := RegisterBuiltIns(NewManager(), []string{"unknown"}); !errors.Is(err, ErrFilterNotFound) {
		t.Fatalf("expected ErrFilterNotFound, got %v", err)
	}
	if err := RegisterBuiltIns(nil, nil); err == nil {
		t.Fatal("expected error for nil manager")
	}
}

type fixedXSS string

func (f fixedXSS) Filter(string) string { return string(f) }

func TestManager_CreateInstanceAcceptsNullWrapperClasses(t *testing.T) {
	manager := NewManager()
	if err := RegisterBuiltIns(manager, []string{iframe.ID}); err != nil {
		t.Fatalf("RegisterBuiltIns: %v", err)
	}

	filter, err := manager.CreateInstance(iframe.ID, interfaces.FilterSettings{
		iframe.SettingWrapperClasses: nil,
	})
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	got, _ := filter.Process(context.Background(), `<iframe src="a"></iframe>`, "en")
	if got != `<figure><iframe src="a"></iframe></figure>` {
		t.Fatalf("expected class attribute to be omitted, got %q", got)
	}
}
