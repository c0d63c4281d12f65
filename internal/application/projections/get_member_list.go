package projections

import (
	"context"
	"strings"

	"gymdesk/internal/domain/member"
)

// GetMemberListQuery carries query parameters.
type GetMemberListQuery struct {
	Search string // case-insensitive substring on name or contact
	Status string // optional lifecycle filter: active, expiring_soon, expired
}

// MemberView is a member annotated with its lifecycle classification.
type MemberView struct {
	Member        member.Member
	Status        string
	DaysRemaining int
	DaysOverdue   int
}

// GetMemberListResult carries the query result.
type GetMemberListResult struct {
	Members []MemberView
	Total   int // snapshot size before filtering
}

// GetMemberListDeps holds dependencies for GetMemberList.
type GetMemberListDeps struct {
	MemberStore MemberStore
}

// FilterMembers keeps members whose name or contact contains query
// case-insensitively. A blank query keeps everything. The input order is
// preserved and the input slice is never mutated.
// PRE: none
// POST: result is a subsequence of members
func FilterMembers(members []member.Member, query string) []member.Member {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return members
	}
	var out []member.Member
	for _, m := range members {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Contact), q) {
			out = append(out, m)
		}
	}
	return out
}

// QueryGetMemberList retrieves the member list with lifecycle status,
// filtered by search text and optionally by status.
// PRE: none
// POST: every returned member matches Search and, when set, Status; relative
// store order is preserved
func QueryGetMemberList(ctx context.Context, query GetMemberListQuery, deps GetMemberListDeps) (GetMemberListResult, error) {
	members, err := deps.MemberStore.List(ctx)
	if err != nil {
		return GetMemberListResult{}, err
	}

	now := timeNow()
	result := GetMemberListResult{Total: len(members)}
	for _, m := range FilterMembers(members, query.Search) {
		c := member.Classify(m.ExpiryDate, now)
		if query.Status != "" && c.Status != query.Status {
			continue
		}
		result.Members = append(result.Members, MemberView{
			Member:        m,
			Status:        c.Status,
			DaysRemaining: c.DaysRemaining,
			DaysOverdue:   c.DaysOverdue,
		})
	}
	return result, nil
}
