package service

import (
	"context"
	"testing"
	"time"

	"github.com/oguzkaya/canteen-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedRoleAndGroup inserts one role and one group and returns their ids.
func seedRoleAndGroup(t *testing.T, repo *fakeRepo) (int, int) {
	t.Helper()
	ctx := context.Background()

	role := &models.Role{Name: "member"}
	require.NoError(t, repo.CreateRole(ctx, role))

	group := &models.Group{Name: "canteen", IsPublic: true}
	require.NoError(t, repo.CreateGroup(ctx, group))

	return role.ID, group.ID
}

func userRequest(roleID, groupID int) models.CreateUserRequest {
	return models.CreateUserRequest{
		Name:          "alice",
		Password:      "secret",
		Email:         "alice@example.com",
		UserDisplayID: "U-001",
		IsActive:      true,
		RoleID:        roleID,
		GroupID:       groupID,
	}
}

func TestCreateUser(t *testing.T) {
	svc, repo := newTestService(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	roleID, groupID := seedRoleAndGroup(t, repo)

	user, err := svc.CreateUser(context.Background(), userRequest(roleID, groupID))
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), user.CreatedDate)
}

func TestCreateUserDuplicateFields(t *testing.T) {
	svc, repo := newTestService(time.Now())
	roleID, groupID := seedRoleAndGroup(t, repo)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, userRequest(roleID, groupID))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*models.CreateUserRequest)
	}{
		{"email", func(r *models.CreateUserRequest) {
			r.Name = "bob"
			r.UserDisplayID = "U-002"
		}},
		{"display id", func(r *models.CreateUserRequest) {
			r.Name = "bob"
			r.Email = "bob@example.com"
		}},
		{"name", func(r *models.CreateUserRequest) {
			r.Email = "bob@example.com"
			r.UserDisplayID = "U-002"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := userRequest(roleID, groupID)
			tt.mutate(&req)

			user, err := svc.CreateUser(ctx, req)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, ErrConflict)
		})
	}

	// None of the rejected creates may have written a row
	assert.Len(t, repo.users, 1)
}

func TestCreateUserUnknownReferences(t *testing.T) {
	svc, repo := newTestService(time.Now())
	roleID, groupID := seedRoleAndGroup(t, repo)
	ctx := context.Background()

	req := userRequest(99, groupID)
	user, err := svc.CreateUser(ctx, req)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	req = userRequest(roleID, 99)
	user, err = svc.CreateUser(ctx, req)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	assert.Empty(t, repo.users)
}

func TestUpdateUserMissingID(t *testing.T) {
	svc, _ := newTestService(time.Now())

	name := "ghost"
	user, err := svc.UpdateUser(context.Background(), 42, models.UpdateUserRequest{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateUserUnchangedFieldsNeverConflict(t *testing.T) {
	svc, repo := newTestService(time.Now())
	roleID, groupID := seedRoleAndGroup(t, repo)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, userRequest(roleID, groupID))
	require.NoError(t, err)

	// Submitting the user's own values back must not trip uniqueness
	email := created.Email
	name := created.Name
	displayID := created.UserDisplayID
	updated, err := svc.UpdateUser(ctx, created.ID, models.UpdateUserRequest{
		Name:          &name,
		Email:         &email,
		UserDisplayID: &displayID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
}

func TestUpdateUserTakenEmailConflicts(t *testing.T) {
	svc, repo := newTestService(time.Now())
	roleID, groupID := seedRoleAndGroup(t, repo)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, userRequest(roleID, groupID))
	require.NoError(t, err)

	req := userRequest(roleID, groupID)
	req.Name = "bob"
	req.Email = "bob@example.com"
	req.UserDisplayID = "U-002"
	bob, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)

	email := "alice@example.com"
	updated, err := svc.UpdateUser(ctx, bob.ID, models.UpdateUserRequest{Email: &email})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateUserUnknownRole(t *testing.T) {
	svc, repo := newTestService(time.Now())
	roleID, groupID := seedRoleAndGroup(t, repo)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, userRequest(roleID, groupID))
	require.NoError(t, err)

	badRole := 99
	updated, err := svc.UpdateUser(ctx, created.ID, models.UpdateUserRequest{RoleID: &badRole})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestUpdateUserPatchesOnlySuppliedFields(t *testing.T) {
	svc, repo := newTestService(time.Now())
	roleID, groupID := seedRoleAndGroup(t, repo)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, userRequest(roleID, groupID))
	require.NoError(t, err)

	balance := -50
	updated, err := svc.UpdateUser(ctx, created.ID, models.UpdateUserRequest{Balance: &balance})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, -50, updated.Balance)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
}

func TestDeleteUserWritesSystemLog(t *testing.T) {
	svc, repo := newTestService(time.Now())
	roleID, groupID := seedRoleAndGroup(t, repo)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, userRequest(roleID, groupID))
	require.NoError(t, err)

	deleted, err := svc.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, repo.users)

	require.Len(t, repo.logs, 1)
	assert.Equal(t, "user_delete", repo.logs[0].TransactionType)
	assert.Equal(t, created.ID, repo.logs[0].UserID)
	assert.Equal(t, groupID, repo.logs[0].GroupID)
}

func TestDeleteUserMissingID(t *testing.T) {
	svc, repo := newTestService(time.Now())

	deleted, err := svc.DeleteUser(context.Background(), 42)
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, repo.logs)
}

func TestGetUsersInDebtOrderedByBalance(t *testing.T) {
	svc, repo := newTestService(time.Now())
	roleID, groupID := seedRoleAndGroup(t, repo)
	ctx := context.Background()

	seed := []struct {
		name    string
		balance int
		active  bool
	}{
		{"carol", 50, true},
		{"alice", -20, true},
		{"bob", 0, true},
		{"dave", -100, false}, // inactive, must not appear
	}
	for i, u := range seed {
		require.NoError(t, repo.CreateUser(ctx, &models.User{
			Name:          u.name,
			Email:         u.name + "@example.com",
			UserDisplayID: "U-" + u.name,
			Balance:       u.balance,
			IsActive:      u.active,
			RoleID:        roleID,
			GroupID:       groupID,
			CreatedDate:   time.Now().Add(time.Duration(i) * time.Minute),
		}))
	}

	users, err := svc.GetUsersInDebt(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []int{-20, 0, 50}, []int{users[0].Balance, users[1].Balance, users[2].Balance})
	assert.Equal(t, "alice", users[0].Name)
}
