package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rohan/voicecv-cli/internal/schemas"
	"github.com/rohan/voicecv-cli/internal/storage"
	"github.com/rohan/voicecv-cli/internal/types"
)

// Draft is an editable deep copy of a CV. Edits accumulate against the
// draft only; nothing is persisted until Save, and Discard throws the
// edits away.
type Draft struct {
	original map[string]any
	data     map[string]any
}

// NewDraft deep-clones cv into an editable draft.
func NewDraft(cv *types.CV) (*Draft, error) {
	data, err := cloneToMap(cv)
	if err != nil {
		return nil, err
	}
	original, err := cloneToMap(cv)
	if err != nil {
		return nil, err
	}
	return &Draft{original: original, data: data}, nil
}

func cloneToMap(cv *types.CV) (map[string]any, error) {
	raw, err := json.Marshal(cv)
	if err != nil {
		return nil, fmt.Errorf("failed to clone CV: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to clone CV: %w", err)
	}
	return m, nil
}

// Set applies value at a dotted path like "personal_info.name",
// "experience[0].company", or "skills.Technical[1]". Missing object
// segments are created; array indexes must already exist.
func (d *Draft) Set(path string, value any) error {
	steps, err := parsePath(path)
	if err != nil {
		return err
	}
	return set(d.data, steps, value, path)
}

// Get reads the value at a dotted path, or nil when absent.
func (d *Draft) Get(path string) (any, error) {
	steps, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	var current any = d.data
	for _, step := range steps {
		switch node := current.(type) {
		case map[string]any:
			if step.index >= 0 {
				return nil, fmt.Errorf("%s: expected an array, found an object", path)
			}
			current = node[step.key]
		case []any:
			if step.index < 0 {
				return nil, fmt.Errorf("%s: expected an object, found an array", path)
			}
			if step.index >= len(node) {
				return nil, fmt.Errorf("%s: index %d out of range", path, step.index)
			}
			current = node[step.index]
		default:
			return nil, nil
		}
	}
	return current, nil
}

// Discard resets every edit back to the original CV.
func (d *Draft) Discard() {
	d.data = deepCopyValue(d.original).(map[string]any)
}

// CV materializes the draft back into a typed CV.
func (d *Draft) CV() (*types.CV, error) {
	raw, err := json.Marshal(d.data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}
	var cv types.CV
	if err := json.Unmarshal(raw, &cv); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &cv, nil
}

// JSON returns the draft document as JSON.
func (d *Draft) JSON() (string, error) {
	raw, err := json.Marshal(d.data)
	if err != nil {
		return "", fmt.Errorf("failed to encode draft: %w", err)
	}
	return string(raw), nil
}

// Save persists the draft all-or-nothing: the document is validated
// against the CV schema first, pushed to the backend when a token is
// present, and only then mirrored into the local store. A backend
// failure leaves the store untouched.
func (a *Aggregator) Save(ctx context.Context, draft *Draft) error {
	doc, err := draft.JSON()
	if err != nil {
		return err
	}
	if err := schemas.ValidateCV(doc); err != nil {
		return fmt.Errorf("refusing to save an invalid CV: %w", err)
	}

	if token, ok := a.store.Get(storage.KeyToken); ok && token != "" {
		if err := a.client.Post(ctx, "/user/cv/save/", json.RawMessage(doc), nil); err != nil {
			return fmt.Errorf("failed to push CV to backend: %w", err)
		}
	}

	return a.store.Set(storage.KeyCV, doc)
}

// pathStep addresses either a map key (index == -1) or an array index.
type pathStep struct {
	key   string
	index int
}

func parsePath(path string) ([]pathStep, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty field path")
	}

	var steps []pathStep
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, fmt.Errorf("invalid field path %q", path)
		}

		key := segment
		var indexes []int
		for strings.HasSuffix(key, "]") {
			open := strings.LastIndex(key, "[")
			if open < 0 {
				return nil, fmt.Errorf("invalid field path %q", path)
			}
			idx, err := strconv.Atoi(key[open+1 : len(key)-1])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("invalid index in field path %q", path)
			}
			indexes = append([]int{idx}, indexes...)
			key = key[:open]
		}
		if key == "" {
			return nil, fmt.Errorf("invalid field path %q", path)
		}

		steps = append(steps, pathStep{key: key, index: -1})
		for _, idx := range indexes {
			steps = append(steps, pathStep{index: idx})
		}
	}
	return steps, nil
}

func set(root map[string]any, steps []pathStep, value any, path string) error {
	var parent any = root
	for i, step := range steps {
		last := i == len(steps)-1

		switch node := parent.(type) {
		case map[string]any:
			if step.index >= 0 {
				return fmt.Errorf("%s: expected an array, found an object", path)
			}
			if last {
				node[step.key] = value
				return nil
			}
			child, ok := node[step.key]
			if !ok || child == nil {
				// Create intermediate objects; arrays must exist.
				if steps[i+1].index >= 0 {
					return fmt.Errorf("%s: cannot index into missing array %q", path, step.key)
				}
				created := map[string]any{}
				node[step.key] = created
				parent = created
				continue
			}
			parent = child
		case []any:
			if step.index < 0 {
				return fmt.Errorf("%s: expected an object, found an array", path)
			}
			if step.index >= len(node) {
				return fmt.Errorf("%s: index %d out of range (length %d)", path, step.index, len(node))
			}
			if last {
				node[step.index] = value
				return nil
			}
			parent = node[step.index]
		default:
			return fmt.Errorf("%s: cannot descend into a scalar value", path)
		}
	}
	return nil
}

func deepCopyValue(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = deepCopyValue(child)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = deepCopyValue(child)
		}
		return out
	default:
		return v
	}
}
