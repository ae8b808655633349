package tmuxtest

import (
	"fmt"

	"github.com/golang/mock/gomock"
	"github.com/lamchau/vim-tmux-navigator/internal/tmux"
)

// ShowOptionRequestMatcher is a gomock matcher that matches
// tmux.ShowOptionRequest objects by option name.
type ShowOptionRequestMatcher struct {
	Name string
}

var _ gomock.Matcher = ShowOptionRequestMatcher{}

func (m ShowOptionRequestMatcher) String() string {
	return fmt.Sprintf("ShowOptionRequest{Name: %q}", m.Name)
}

// Matches reports whether the provided ShowOptionRequest matches.
func (m ShowOptionRequestMatcher) Matches(x interface{}) bool {
	req, ok := x.(tmux.ShowOptionRequest)
	if !ok {
		return false
	}

	return req.Name == m.Name
}

// BindKeyRequestMatcher is a gomock matcher that matches tmux.BindKeyRequest
// objects by key and key table.
type BindKeyRequestMatcher struct {
	Key   string
	Table string
}

var _ gomock.Matcher = BindKeyRequestMatcher{}

func (m BindKeyRequestMatcher) String() string {
	return fmt.Sprintf("BindKeyRequest{Key: %q, Table: %q}", m.Key, m.Table)
}

// Matches reports whether the provided BindKeyRequest matches.
func (m BindKeyRequestMatcher) Matches(x interface{}) bool {
	req, ok := x.(tmux.BindKeyRequest)
	if !ok {
		return false
	}

	return req.Key == m.Key && req.Table == m.Table
}
