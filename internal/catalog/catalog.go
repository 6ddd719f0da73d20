// Package catalog holds the static onboarding catalog: wizard phases, data
// platforms, steps with their checklists, per-item instructions, the
// documentation structure and the assistant tips. A Catalog is immutable once
// loaded and safe for concurrent use.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

//go:embed tips.yaml
var defaultTips []byte

// CorePlatform is the reserved platform value under which core steps are recorded.
const CorePlatform = "core"

// Scope says which platform instance a step's progress is recorded under.
type Scope string

const (
	// ScopeCore steps apply to the whole client and are recorded under "core".
	ScopeCore Scope = "core"
	// ScopePlatform steps belong to exactly one platform.
	ScopePlatform Scope = "platform"
	// ScopeEach steps are shared but tracked separately per platform instance.
	ScopeEach Scope = "each"
)

// Phase is one of the six wizard phases
type Phase struct {
	ID          int    `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Platform is a data source a client can be onboarded from
type Platform struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Logo        string `yaml:"logo" json:"logo,omitempty"`
	Category    string `yaml:"category" json:"category"`
	Description string `yaml:"description" json:"description"`
}

// Step is a wizard step with its checklist
type Step struct {
	ID          string   `yaml:"id" json:"id"`
	Phase       int      `yaml:"phase" json:"phase"`
	Scope       Scope    `yaml:"scope" json:"scope"`
	Platform    string   `yaml:"platform,omitempty" json:"platform,omitempty"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Checklist   []string `yaml:"checklist" json:"checklist"`
	DocLink     string   `yaml:"docLink,omitempty" json:"docLink,omitempty"`
}

// Link is a reference attached to a checklist item
type Link struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// ChecklistContent is the long-form instruction for one checklist item
type ChecklistContent struct {
	ItemIndex   int    `yaml:"-" json:"itemIndex"`
	Title       string `yaml:"title" json:"title"`
	Instruction string `yaml:"instruction" json:"instruction"`
	Links       []Link `yaml:"links" json:"links"`
}

// DocPage is an entry of a documentation section
type DocPage struct {
	Slug  string `yaml:"slug" json:"slug"`
	Title string `yaml:"title" json:"title"`
}

// DocSection groups documentation pages
type DocSection struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description"`
	Docs        []DocPage `yaml:"docs" json:"docs"`
}

// GuideCategory groups platform guides
type GuideCategory struct {
	ID        string   `yaml:"id" json:"id"`
	Title     string   `yaml:"title" json:"title"`
	Platforms []string `yaml:"platforms" json:"platforms"`
}

// PlatformGuides lists the per-platform integration guides
type PlatformGuides struct {
	Title       string          `yaml:"title" json:"title"`
	Description string          `yaml:"description" json:"description"`
	Categories  []GuideCategory `yaml:"categories" json:"categories"`
}

// DocStructure is the navigation tree of the documentation pages
type DocStructure struct {
	Sections       []DocSection   `yaml:"sections" json:"sections"`
	PlatformGuides PlatformGuides `yaml:"platformGuides" json:"platformGuides"`
}

// Tip is a context-aware assistant message
type Tip struct {
	ID        string `yaml:"id" json:"id"`
	Page      string `yaml:"page" json:"page"`
	Platform  string `yaml:"platform,omitempty" json:"platform,omitempty"`
	Phase     int    `yaml:"phase,omitempty" json:"phase,omitempty"`
	Condition string `yaml:"condition,omitempty" json:"condition,omitempty"`
	Priority  int    `yaml:"priority,omitempty" json:"priority,omitempty"`
	Message   string `yaml:"message" json:"message"`
	Animation string `yaml:"animation" json:"animation"`
}

// PageAny matches every page
const PageAny = "any"

// DefaultTipPriority applies to tips without an explicit priority
const DefaultTipPriority = 5

// EffectivePriority returns the tip's priority, defaulting to DefaultTipPriority
func (t Tip) EffectivePriority() int {
	if t.Priority == 0 {
		return DefaultTipPriority
	}
	return t.Priority
}

type catalogFile struct {
	Phases    []Phase                       `yaml:"phases"`
	Platforms []Platform                    `yaml:"platforms"`
	Steps     []Step                        `yaml:"steps"`
	Content   map[string][]ChecklistContent `yaml:"content"`
	Docs      DocStructure                  `yaml:"docs"`
}

type tipsFile struct {
	Tips []Tip `yaml:"tips"`
}

// Catalog is the read-only lookup over the loaded catalog data
type Catalog struct {
	phases    []Phase
	platforms []Platform
	steps     []Step
	content   map[string][]ChecklistContent
	docs      DocStructure
	tips      []Tip

	stepByID     map[string]Step
	platformByID map[string]Platform
}

// Load parses the embedded catalog and tips
func Load() (*Catalog, error) {
	return Parse(defaultCatalog, defaultTips)
}

// MustLoad is Load for callers that treat a broken embedded catalog as fatal
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile parses the catalog at path, keeping the embedded tips
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}
	return Parse(data, defaultTips)
}

// Parse builds a Catalog from raw catalog and tips YAML documents
func Parse(catalogYAML, tipsYAML []byte) (*Catalog, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(catalogYAML, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	var tf tipsFile
	if err := yaml.Unmarshal(tipsYAML, &tf); err != nil {
		return nil, fmt.Errorf("parse tips: %w", err)
	}

	c := &Catalog{
		phases:       cf.Phases,
		platforms:    cf.Platforms,
		steps:        cf.Steps,
		content:      cf.Content,
		docs:         cf.Docs,
		tips:         tf.Tips,
		stepByID:     make(map[string]Step, len(cf.Steps)),
		platformByID: make(map[string]Platform, len(cf.Platforms)),
	}
	if c.content == nil {
		c.content = map[string][]ChecklistContent{}
	}
	for stepID, items := range c.content {
		for i := range items {
			items[i].ItemIndex = i
			if items[i].Links == nil {
				items[i].Links = []Link{}
			}
		}
		c.content[stepID] = items
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	phaseIDs := make(map[int]bool, len(c.phases))
	for _, p := range c.phases {
		if p.ID < 1 || p.ID > 6 {
			return fmt.Errorf("phase %d out of range 1..6", p.ID)
		}
		phaseIDs[p.ID] = true
	}

	for _, p := range c.platforms {
		if p.ID == "" || p.ID == CorePlatform {
			return fmt.Errorf("invalid platform id %q", p.ID)
		}
		if _, dup := c.platformByID[p.ID]; dup {
			return fmt.Errorf("duplicate platform %q", p.ID)
		}
		c.platformByID[p.ID] = p
	}

	for _, s := range c.steps {
		if s.ID == "" {
			return fmt.Errorf("step without id")
		}
		if _, dup := c.stepByID[s.ID]; dup {
			return fmt.Errorf("duplicate step %q", s.ID)
		}
		if !phaseIDs[s.Phase] {
			return fmt.Errorf("step %q references unknown phase %d", s.ID, s.Phase)
		}
		switch s.Scope {
		case ScopeCore, ScopeEach:
			if s.Platform != "" {
				return fmt.Errorf("step %q with scope %s must not name a platform", s.ID, s.Scope)
			}
		case ScopePlatform:
			if _, ok := c.platformByID[s.Platform]; !ok {
				return fmt.Errorf("step %q references unknown platform %q", s.ID, s.Platform)
			}
		default:
			return fmt.Errorf("step %q has unknown scope %q", s.ID, s.Scope)
		}
		if len(s.Checklist) == 0 {
			return fmt.Errorf("step %q has an empty checklist", s.ID)
		}
		c.stepByID[s.ID] = s
	}

	for stepID := range c.content {
		if _, ok := c.stepByID[stepID]; !ok {
			return fmt.Errorf("checklist content for unknown step %q", stepID)
		}
	}

	tipIDs := make(map[string]bool, len(c.tips))
	for _, t := range c.tips {
		if t.ID == "" || t.Page == "" {
			return fmt.Errorf("tip %q needs an id and a page", t.ID)
		}
		if tipIDs[t.ID] {
			return fmt.Errorf("duplicate tip %q", t.ID)
		}
		tipIDs[t.ID] = true
	}
	return nil
}

// Step looks up a step by id
func (c *Catalog) Step(id string) (Step, bool) {
	s, ok := c.stepByID[id]
	return s, ok
}

// Platform looks up a platform by id
func (c *Catalog) Platform(id string) (Platform, bool) {
	p, ok := c.platformByID[id]
	return p, ok
}

// Phases returns the wizard phases in order
func (c *Catalog) Phases() []Phase {
	return append([]Phase(nil), c.phases...)
}

// Platforms returns all platforms in catalog order
func (c *Catalog) Platforms() []Platform {
	return append([]Platform(nil), c.platforms...)
}

// Steps returns every step in catalog order
func (c *Catalog) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// WizardSteps returns the steps shown for one platform's wizard: core steps,
// the platform's own steps and the shared per-platform steps, ordered by phase.
func (c *Catalog) WizardSteps(platform string) []Step {
	var out []Step
	for _, s := range c.steps {
		if s.Scope != ScopePlatform || s.Platform == platform {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Phase < out[j].Phase })
	return out
}

// ChecklistContent returns the per-item instructions for a step, or an empty slice
func (c *Catalog) ChecklistContent(stepID string) []ChecklistContent {
	items := c.content[stepID]
	if len(items) == 0 {
		return []ChecklistContent{}
	}
	return append([]ChecklistContent(nil), items...)
}

// DocStructure returns the documentation navigation tree
func (c *Catalog) DocStructure() DocStructure {
	return c.docs
}

// Tips returns every tip in catalog order
func (c *Catalog) Tips() []Tip {
	return append([]Tip(nil), c.tips...)
}

// RecordingPlatform resolves the platform under which progress for step is
// recorded when the user works in the wizard of platform.
func RecordingPlatform(step Step, platform string) string {
	if step.Scope == ScopeCore {
		return CorePlatform
	}
	return platform
}

// AcceptsPlatform reports whether progress for step may be recorded under platform
func (s Step) AcceptsPlatform(platform string) bool {
	switch s.Scope {
	case ScopeCore:
		return platform == CorePlatform
	case ScopePlatform:
		return platform == s.Platform
	case ScopeEach:
		return platform != "" && platform != CorePlatform
	}
	return false
}
