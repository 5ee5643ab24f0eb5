// Package store holds the client's two pieces of shared state, the session
// and the meal history. Each store writes its persisted subset through to a
// storage.Storage on every mutation and restores it on construction.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Varun5711/mealcounter/internal/storage"
)

const (
	SessionNamespace = "auth-storage"
	MealsNamespace   = "meal-storage"
)

// load decodes the record under namespace into v. A missing record leaves v
// untouched.
func load(ctx context.Context, st storage.Storage, namespace string, v any) (bool, error) {
	raw, found, err := st.Get(ctx, namespace)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", namespace, err)
	}
	if !found {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", namespace, err)
	}
	return true, nil
}

func save(ctx context.Context, st storage.Storage, namespace string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", namespace, err)
	}

	if err := st.Set(ctx, namespace, raw); err != nil {
		return fmt.Errorf("save %s: %w", namespace, err)
	}
	return nil
}
