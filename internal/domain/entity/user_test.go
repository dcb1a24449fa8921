package entity

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRoleNamesSorted(t *testing.T) {
	u := &User{Roles: []Role{
		{ID: 2, Name: RoleUserAdmin},
		{ID: 3, Name: RoleEmployee},
		{ID: 1, Name: RoleSystemAdmin},
	}}
	want := []string{RoleEmployee, RoleSystemAdmin, RoleUserAdmin}
	if got := u.RoleNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("RoleNames() = %v, want %v", got, want)
	}

	empty := &User{}
	if got := empty.RoleNames(); len(got) != 0 {
		t.Errorf("RoleNames() on empty = %v, want empty", got)
	}
}

func TestHasAnyRole(t *testing.T) {
	u := &User{Roles: []Role{{Name: RoleEmployee}}}
	if u.HasAnyRole(RoleSystemAdmin, RoleUserAdmin) {
		t.Error("employee should not match admin roles")
	}
	if !u.HasAnyRole(RoleSystemAdmin, RoleEmployee) {
		t.Error("expected match on EMPLOYEE")
	}
	if (&User{}).HasAnyRole(RoleEmployee) {
		t.Error("user without roles matched")
	}
}

func TestAuditDetailsJSON(t *testing.T) {
	tests := []struct {
		name    string
		details AuditDetails
		want    string
	}{
		{
			name:    "created",
			details: CreatedDetails{Username: "alice", Email: "alice@example.com", Roles: []string{"EMPLOYEE"}},
			want:    `{"username":"alice","email":"alice@example.com","roles":["EMPLOYEE"]}`,
		},
		{
			name: "updated",
			details: UpdatedDetails{
				OldUsername: "alice", NewUsername: "alicia",
				OldEmail: "alice@example.com", NewEmail: "alicia@example.com",
				OldRoles: []string{"EMPLOYEE"}, NewRoles: []string{"USER_ADMIN"},
			},
			want: `{"oldUsername":"alice","newUsername":"alicia","oldEmail":"alice@example.com","newEmail":"alicia@example.com","oldRoles":["EMPLOYEE"],"newRoles":["USER_ADMIN"]}`,
		},
		{
			name:    "deleted",
			details: DeletedDetails{Username: "alice", Email: "alice@example.com"},
			want:    `{"username":"alice","email":"alice@example.com"}`,
		},
		{
			name:    "role change",
			details: RoleChangeDetails{Role: "USER_ADMIN"},
			want:    `{"role":"USER_ADMIN"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.details)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("json = %s, want %s", b, tt.want)
			}
		})
	}
}
