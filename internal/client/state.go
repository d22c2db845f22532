package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"campus-events/internal/client/localstore"
	"campus-events/internal/model"

	"github.com/google/uuid"
)

const (
	savedEventIDsKey = "saved_event_ids"
	sessionKey       = "session"
	adminSessionKey  = "admin_session"
)

// StoredSession 登入後保存在本機的 session
type StoredSession struct {
	Token string      `json:"token"`
	Actor model.Actor `json:"actor"`
}

// State 本機狀態：啟動時載入，每次修改立即寫回
type State struct {
	store    localstore.Store
	savedIDs []uuid.UUID
	session  *StoredSession
	admin    bool
}

func LoadState(store localstore.Store) (*State, error) {
	s := &State{store: store, savedIDs: []uuid.UUID{}}

	raw, err := store.Get(savedEventIDsKey)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &s.savedIDs); err != nil {
			// 壞掉的資料直接丟棄
			s.savedIDs = []uuid.UUID{}
		}
	case !errors.Is(err, localstore.ErrNotFound):
		return nil, fmt.Errorf("load saved events: %w", err)
	}

	raw, err = store.Get(sessionKey)
	switch {
	case err == nil:
		var sess StoredSession
		if err := json.Unmarshal(raw, &sess); err == nil && sess.Token != "" {
			s.session = &sess
		}
	case !errors.Is(err, localstore.ErrNotFound):
		return nil, fmt.Errorf("load session: %w", err)
	}

	raw, err = store.Get(adminSessionKey)
	switch {
	case err == nil:
		s.admin = string(raw) == "true"
	case !errors.Is(err, localstore.ErrNotFound):
		return nil, fmt.Errorf("load admin flag: %w", err)
	}

	return s, nil
}

func (s *State) SavedIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(s.savedIDs))
	copy(out, s.savedIDs)
	return out
}

func (s *State) savedSet() map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(s.savedIDs))
	for _, id := range s.savedIDs {
		set[id] = true
	}
	return set
}

func (s *State) IsSaved(id uuid.UUID) bool {
	for _, saved := range s.savedIDs {
		if saved == id {
			return true
		}
	}
	return false
}

// ToggleSaved 加入或移除，回傳切換後是否為已收藏
func (s *State) ToggleSaved(id uuid.UUID) (bool, error) {
	next := make([]uuid.UUID, 0, len(s.savedIDs)+1)
	removed := false
	for _, saved := range s.savedIDs {
		if saved == id {
			removed = true
			continue
		}
		next = append(next, saved)
	}
	if !removed {
		next = append(next, id)
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return false, err
	}
	if err := s.store.Set(savedEventIDsKey, raw); err != nil {
		return false, err
	}
	s.savedIDs = next
	return !removed, nil
}

func (s *State) Session() (StoredSession, bool) {
	if s.session == nil {
		return StoredSession{}, false
	}
	return *s.session, true
}

func (s *State) IsAdmin() bool {
	return s.admin && s.session != nil && s.session.Actor.IsAdmin()
}

func (s *State) SetSession(sess StoredSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.store.Set(sessionKey, raw); err != nil {
		return err
	}
	if sess.Actor.IsAdmin() {
		if err := s.store.Set(adminSessionKey, []byte("true")); err != nil {
			return err
		}
	} else if err := s.store.Remove(adminSessionKey); err != nil {
		return err
	}
	s.session = &sess
	s.admin = sess.Actor.IsAdmin()
	return nil
}

func (s *State) ClearSession() error {
	if err := s.store.Remove(sessionKey); err != nil {
		return err
	}
	if err := s.store.Remove(adminSessionKey); err != nil {
		return err
	}
	s.session = nil
	s.admin = false
	return nil
}
