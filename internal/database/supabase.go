package database

import (
	"errors"

	"empleados-api/internal/config"
	"empleados-api/internal/domain"

	"github.com/nedpals/supabase-go"
)

// NewSupabaseClient создает клиент Supabase из конфигурации.
// Без обоих реквизитов клиент не строится — это состояние error-config.
func NewSupabaseClient(cfg config.Config) (*supabase.Client, error) {
	if !cfg.HasStoreCredentials() {
		return nil, domain.ErrMissingStoreConfig
	}

	client := supabase.CreateClient(cfg.SupabaseURL, cfg.SupabaseKey)
	if client == nil {
		return nil, errors.New("failed to create supabase client")
	}

	return client, nil
}
