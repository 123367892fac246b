package postgres

import (
	"testing"

	"github.com/google/uuid"
)

func TestValidID(t *testing.T) {
	id := uuid.NewString()
	cases := []struct {
		ids  []string
		want bool
	}{
		{[]string{id}, true},
		{[]string{id, uuid.NewString()}, true},
		{[]string{"abc"}, false},
		{[]string{""}, false},
		{[]string{id, "abc"}, false},
	}
	for _, tc := range cases {
		if got := validID(tc.ids...); got != tc.want {
			t.Errorf("validID(%v) = %v, want %v", tc.ids, got, tc.want)
		}
	}
}
