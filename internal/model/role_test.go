package model

import "testing"

func TestPermissionMatrix(t *testing.T) {
	tests := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleAdmin, PermFilmsReview, true},
		{RoleAdmin, PermStatsView, true},
		{RoleAdmin, PermFilmsSubmit, false},
		{RoleAdmin, PermTicketsPurchase, false},
		{RoleSubmitter, PermFilmsSubmit, true},
		{RoleSubmitter, PermFilmsEditOwn, true},
		{RoleSubmitter, PermFilmsReview, false},
		{RoleBuyer, PermTicketsPurchase, true},
		{RoleBuyer, PermTicketsViewOwn, true},
		{RoleBuyer, PermFilmsSubmit, false},
		{Role("guest"), PermTicketsViewOwn, false},
	}
	for _, tt := range tests {
		if got := tt.role.Can(tt.perm); got != tt.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tt.role, tt.perm, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{" Buyer ", RoleBuyer, true},
		{"submitter", RoleSubmitter, true},
		{"filmmaker", RoleSubmitter, true},
		{"owner", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRole(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if Role("guest").Valid() || !RoleBuyer.Valid() {
		t.Error("Valid disagrees with the permission matrix")
	}
}

func TestFilmPatchApply(t *testing.T) {
	f := Film{ID: "1", Title: "T", Genre: "G", Status: FilmPending, SubmitterID: "u"}
	if !(FilmPatch{}).Empty() {
		t.Fatal("zero patch must be empty")
	}
	genre := "Horror"
	got := FilmPatch{Genre: &genre}.Apply(f)
	if got.Genre != "Horror" || got.Title != "T" || got.Status != FilmPending || got.SubmitterID != "u" {
		t.Fatalf("Apply = %+v", got)
	}
}
