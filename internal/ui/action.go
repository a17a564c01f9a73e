// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagekit

package ui

import (
	"sort"
	"sync"

	"github.com/derailed/tcell/v2"
)

// Rune keys used by the table bindings.
const (
	KeySpace tcell.Key = ' '
	KeyQ     tcell.Key = 'q'
	KeyS     tcell.Key = 's'
)

// ActionHandler handles a keyboard command.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, visible bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: visible}
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// KeyActions tracks the actions bound to a component.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns an empty action set.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Add binds a single action.
func (a *KeyActions) Add(k tcell.Key, action KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.actions[k] = action
}

// Bulk binds a set of actions.
func (a *KeyActions) Bulk(km KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()
	for k, v := range km {
		a.actions[k] = v
	}
}

// Get returns the action bound to a key.
func (a *KeyActions) Get(k tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()
	v, ok := a.actions[k]
	return v, ok
}

// Hints returns the menu hints for the bound actions.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	kk := make([]tcell.Key, 0, len(a.actions))
	for k := range a.actions {
		kk = append(kk, k)
	}
	sort.Slice(kk, func(i, j int) bool { return kk[i] < kk[j] })

	hh := make(MenuHints, 0, len(kk))
	for _, k := range kk {
		act := a.actions[k]
		hh = append(hh, MenuHint{
			Mnemonic:    keyName(k),
			Description: act.Description,
			Visible:     act.Visible,
		})
	}
	return hh
}

func keyName(k tcell.Key) string {
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	if k == KeySpace {
		return "space"
	}
	return string(rune(k))
}
