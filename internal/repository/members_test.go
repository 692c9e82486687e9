package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
)

func memberNames(members []domain.Member) []string {
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, member.Name)
	}
	return names
}

func newRosterWith(t *testing.T, names ...string) (*Repository, []domain.Member) {
	t.Helper()

	repo := NewRepository()
	for _, name := range names {
		_, err := repo.CreateMember(name)
		require.NoError(t, err)
	}

	return repo, repo.GetAllMembers()
}

func TestCreateMember(t *testing.T) {
	repo := NewRepository()

	anna, err := repo.CreateMember("Anna")
	require.NoError(t, err)
	assert.Equal(t, "Anna", anna.Name)
	assert.Equal(t, 0, anna.Order)
	assert.NotEqual(t, uuid.Nil, anna.ID)

	ben, err := repo.CreateMember("Ben")
	require.NoError(t, err)
	assert.Equal(t, 1, ben.Order)

	// 空白姓名被拒绝
	_, err = repo.CreateMember("  ")
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	// 重名被拒绝，列表不变
	_, err = repo.CreateMember("Anna")
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	assert.Equal(t, []string{"Anna", "Ben"}, memberNames(repo.GetAllMembers()))
}

func TestRenameMember(t *testing.T) {
	repo, members := newRosterWith(t, "Anna", "Ben")
	anna := members[0]

	renamed, err := repo.RenameMember(anna.ID, "Annika")
	require.NoError(t, err)
	// 改名不改变 ID
	assert.Equal(t, anna.ID, renamed.ID)
	assert.Equal(t, "Annika", renamed.Name)

	// 改成其他成员的名字被拒绝
	_, err = repo.RenameMember(anna.ID, "Ben")
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	// 改成自己当前的名字是允许的（查重跳过自身）
	_, err = repo.RenameMember(anna.ID, "Annika")
	require.NoError(t, err)

	_, err = repo.RenameMember(anna.ID, "")
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = repo.RenameMember(uuid.New(), "Clara")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestRenameMemberKeepsAssignments(t *testing.T) {
	repo, members := newRosterWith(t, "Anna")
	anna := members[0]

	monday := date(2025, 1, 6)
	require.NoError(t, repo.SetAssignment(monday, anna.ID, "8-16"))

	_, err := repo.RenameMember(anna.ID, "Annika")
	require.NoError(t, err)

	value, exists := repo.GetAssignment(monday, anna.ID)
	require.True(t, exists)
	assert.Equal(t, "8-16", value)
}

func TestDeleteMember(t *testing.T) {
	repo, members := newRosterWith(t, "Anna", "Ben", "Clara")
	ben := members[1]

	require.NoError(t, repo.DeleteMember(ben.ID))
	assert.Equal(t, []string{"Anna", "Clara"}, memberNames(repo.GetAllMembers()))

	// 剩余成员的顺序号重新编排
	for i, member := range repo.GetAllMembers() {
		assert.Equal(t, i, member.Order)
	}

	assert.ErrorIs(t, repo.DeleteMember(ben.ID), domain.ErrMemberNotFound)
}

func TestReorderMembers(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		to      int
		want    []string
		wantErr error
	}{
		{name: "前移到中间", from: 0, to: 2, want: []string{"B", "C", "A", "D"}},
		{name: "后移到开头", from: 3, to: 0, want: []string{"D", "A", "B", "C"}},
		{name: "移到末尾", from: 0, to: 3, want: []string{"B", "C", "D", "A"}},
		{name: "原地不动", from: 1, to: 1, want: []string{"A", "B", "C", "D"}},
		{name: "来源越界", from: 4, to: 0, wantErr: domain.ErrIndexOutOfRange},
		{name: "目标越界", from: 0, to: 4, wantErr: domain.ErrIndexOutOfRange},
		{name: "负数下标", from: -1, to: 2, wantErr: domain.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newRosterWith(t, "A", "B", "C", "D")

			err := repo.ReorderMembers(tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// 拒绝时顺序保持不变
				assert.Equal(t, []string{"A", "B", "C", "D"}, memberNames(repo.GetAllMembers()))
				return
			}

			require.NoError(t, err)
			members := repo.GetAllMembers()
			assert.Equal(t, tt.want, memberNames(members))
			for i, member := range members {
				assert.Equal(t, i, member.Order)
			}
		})
	}
}
