package platform

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/sgaunet/bullets"
)

// DryRunProvider records comments instead of sending them.
type DryRunProvider struct {
	mu       sync.Mutex
	nextID   int64
	comments map[string]string
	log      *bullets.Logger
}

// NewDryRunProvider creates a provider that never touches the network.
func NewDryRunProvider(log *bullets.Logger) *DryRunProvider {
	return &DryRunProvider{
		nextID:   1,
		comments: make(map[string]string),
		log:      log,
	}
}

// CreateComment stores body under a new id.
func (p *DryRunProvider) CreateComment(_ context.Context, body string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := strconv.FormatInt(p.nextID, 10)
	p.nextID++
	p.comments[id] = body
	p.log.Debug("[dry-run] would create comment:\n" + body)
	return id, nil
}

// EditComment replaces the stored body. Unknown ids are accepted since the
// comment may have been created by an earlier, real run.
func (p *DryRunProvider) EditComment(_ context.Context, id, body string) error {
	if _, err := parseID(id); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.comments[id] = body
	p.log.Debug(fmt.Sprintf("[dry-run] would edit comment %s:\n%s", id, body))
	return nil
}

// Comment returns the last body recorded for id.
func (p *DryRunProvider) Comment(id string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	body, ok := p.comments[id]
	return body, ok
}

// PlatformName returns "DryRun".
func (p *DryRunProvider) PlatformName() string {
	return "DryRun"
}

var _ Provider = (*DryRunProvider)(nil)
