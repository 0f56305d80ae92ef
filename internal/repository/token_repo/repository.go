package token_repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"casino_client/internal/model"
	"casino_client/internal/repository"
)

type tokenFile struct {
	AccessToken string        `yaml:"access_token"`
	Profile     model.Profile `yaml:"profile"`
}

// Хранит access токен и профиль в yaml-файле с правами 0600
type repo struct {
	mtx  sync.Mutex
	path string
}

func NewTokenRepository(path string) repository.TokenRepository {
	return &repo{path: path}
}

// Load - без файла возвращает repository.ErrNotFound
func (r *repo) Load() (string, model.Profile, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", model.Profile{}, repository.ErrNotFound
		}
		return "", model.Profile{}, err
	}

	var f tokenFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", model.Profile{}, fmt.Errorf("parse token file: %w", err)
	}
	if f.AccessToken == "" {
		return "", model.Profile{}, repository.ErrNotFound
	}
	return f.AccessToken, f.Profile, nil
}

func (r *repo) Save(token string, profile model.Profile) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	data, err := yaml.Marshal(tokenFile{AccessToken: token, Profile: profile})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(r.path, data, 0o600)
}

func (r *repo) Clear() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	err := os.Remove(r.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
