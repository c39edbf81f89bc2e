// Package visibility is the authorization core: it computes, for a given
// actor and entity kind, the minimal storage predicate that scopes what that
// actor may see or modify. Every predicate conjoins the actor's tenant id;
// no query reaches storage without it.
package visibility

import (
	"github.com/easyhr/backend/internal/auth"
)

// EntityKind names the record collections the engine produces filters for.
type EntityKind int

const (
	KindUsers EntityKind = iota
	KindWorklogs
	KindFeedbacks
	KindRecognitions
	KindCompanyValues
)

// Intent distinguishes read queries from write preconditions. Both intents
// currently yield the same predicate: the scope an actor may read is exactly
// the scope it may mutate.
type Intent int

const (
	IntentRead Intent = iota
	IntentWrite
)

// Predicate is the storage-agnostic query scope. TenantID is always set and
// must be applied as the outermost AND clause; at most one of the optional
// narrowing clauses is set.
type Predicate struct {
	// TenantID scopes every query; never zero.
	TenantID int64

	// SelfID restricts user listings to the actor's own record (id == SelfID).
	SelfID *int64

	// ExcludeID drops the actor's own record from a user listing (id != ExcludeID).
	ExcludeID *int64

	// ManagedBy restricts user listings to direct reports (manager_id == ManagedBy).
	ManagedBy *int64

	// ParticipantID restricts worklog/feedback records to rows the actor owns
	// or manages (user_id == ParticipantID OR manager_id == ParticipantID).
	ParticipantID *int64
}

// TenantOnly is the widest predicate an actor can hold: everything in its
// tenant.
func TenantOnly(tenantID int64) Predicate {
	return Predicate{TenantID: tenantID}
}

// FilterFor computes the predicate for an actor/entity/intent combination.
// Visibility narrows strictly with the role:
//
//	ADMIN:    whole tenant (user listings exclude self)
//	MANAGER:  direct reports; records owned or managed
//	EMPLOYEE: own record; records owned or managed
//	MEMBER:   whole tenant (base role, no role filter)
//
// Recognition and company values are tenant-wide for every role.
func FilterFor(actor *auth.Actor, kind EntityKind, intent Intent) Predicate {
	p := TenantOnly(actor.TenantID)
	self := actor.UserID

	switch kind {
	case KindUsers:
		switch actor.Role {
		case auth.RoleAdmin:
			p.ExcludeID = &self
		case auth.RoleManager:
			p.ManagedBy = &self
		case auth.RoleEmployee:
			p.SelfID = &self
		}
	case KindWorklogs, KindFeedbacks:
		switch actor.Role {
		case auth.RoleManager, auth.RoleEmployee:
			p.ParticipantID = &self
		}
	}

	return p
}

// FilterForUserList handles the `all` listing flag as a capability: only an
// ADMIN may request the unscoped (full-tenant) user listing. For any other
// role the flag is ignored and the role filter applies.
func FilterForUserList(actor *auth.Actor, includeAll bool) Predicate {
	if includeAll && actor.Role == auth.RoleAdmin {
		return TenantOnly(actor.TenantID)
	}
	return FilterFor(actor, KindUsers, IntentRead)
}

// ManagerStamp decides the denormalized manager reference written onto a new
// worklog or feedback record: stamped with the actor's manager when the actor
// is an EMPLOYEE, omitted otherwise. An employee with no manager on file is a
// data inconsistency that is tolerated; the stamp is simply omitted.
func ManagerStamp(actor *auth.Actor) *int64 {
	if actor.Role != auth.RoleEmployee {
		return nil
	}
	return actor.ManagerID
}

// CanListAll reports whether the actor may request an unscoped listing.
func CanListAll(actor *auth.Actor) bool {
	return actor.Role == auth.RoleAdmin
}
