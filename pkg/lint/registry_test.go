package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/commentlint/pkg/config"
)

// mockRule for testing.
type mockRule struct {
	id       string
	name     string
	enabled  bool
	severity config.Severity
	diags    []Diagnostic
	err      error
}

func (m *mockRule) ID() string                       { return m.id }
func (m *mockRule) Name() string                     { return m.name }
func (m *mockRule) Description() string              { return "mock" }
func (m *mockRule) DefaultEnabled() bool             { return m.enabled }
func (m *mockRule) DefaultSeverity() config.Severity { return m.severity }
func (m *mockRule) Tags() []string                   { return nil }
func (m *mockRule) Apply(*RuleContext) ([]Diagnostic, error) {
	return m.diags, m.err
}

func newMockRule(id, name string) *mockRule {
	return &mockRule{id: id, name: name, enabled: true, severity: config.SeverityWarning}
}

func TestRegistry_Register_And_Get(t *testing.T) {
	reg := NewRegistry()
	rule := newMockRule("CC001", "commented-segments")
	reg.Register(rule)

	got, ok := reg.Get("CC001")
	assert.True(t, ok)
	assert.Equal(t, "CC001", got.ID())
	assert.Equal(t, "commented-segments", got.Name())
}

func TestRegistry_Get_ByNameFallback(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newMockRule("CC001", "commented-segments"))

	got, ok := reg.Get("commented-segments")
	assert.True(t, ok)
	assert.Equal(t, "CC001", got.ID())
}

func TestRegistry_Get_NotFound(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.Get("nonexistent")
	assert.False(t, ok)
}

func TestRegistry_GetByID(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newMockRule("CC002", "newline-before-comment"))

	got, ok := reg.GetByID("CC002")
	assert.True(t, ok)
	assert.Equal(t, "CC002", got.ID())

	// Names are not IDs.
	_, ok = reg.GetByID("newline-before-comment")
	assert.False(t, ok)
}

func TestRegistry_Rules_SortedByID(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newMockRule("CC003", "c"))
	reg.Register(newMockRule("CC001", "a"))
	reg.Register(newMockRule("CC002", "b"))

	rules := reg.Rules()
	assert.Len(t, rules, 3)
	assert.Equal(t, "CC001", rules[0].ID())
	assert.Equal(t, "CC002", rules[1].ID())
	assert.Equal(t, "CC003", rules[2].ID())
}

func TestRegistry_IDs(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newMockRule("CC002", "b"))
	reg.Register(newMockRule("CC001", "a"))

	assert.Equal(t, []string{"CC001", "CC002"}, reg.IDs())
}

func TestRegistry_Register_Replaces(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newMockRule("CC001", "first"))
	reg.Register(newMockRule("CC001", "second"))

	got, ok := reg.Get("CC001")
	assert.True(t, ok)
	assert.Equal(t, "second", got.Name())
	assert.Len(t, reg.Rules(), 1)
}
