package visibility_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/easyhr/backend/internal/auth"
	"github.com/easyhr/backend/internal/visibility"
)

func TestVisibility(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Visibility Suite")
}

func actorWithRole(role auth.Role) *auth.Actor {
	managerID := int64(7)
	actor := &auth.Actor{
		UserID:   42,
		TenantID: 3,
		Role:     role,
	}
	if role == auth.RoleEmployee {
		actor.ManagerID = &managerID
	}
	return actor
}

var allRoles = []auth.Role{auth.RoleAdmin, auth.RoleManager, auth.RoleEmployee, auth.RoleMember}

var allKinds = []visibility.EntityKind{
	visibility.KindUsers,
	visibility.KindWorklogs,
	visibility.KindFeedbacks,
	visibility.KindRecognitions,
	visibility.KindCompanyValues,
}

var _ = Describe("FilterFor", func() {
	It("always conjoins the actor's tenant id, for every role and entity", func() {
		for _, role := range allRoles {
			for _, kind := range allKinds {
				for _, intent := range []visibility.Intent{visibility.IntentRead, visibility.IntentWrite} {
					p := visibility.FilterFor(actorWithRole(role), kind, intent)
					Expect(p.TenantID).To(Equal(int64(3)),
						"tenant clause missing for role %s kind %d", role, kind)
				}
			}
		}
	})

	Context("user listings", func() {
		It("excludes the admin's own record", func() {
			p := visibility.FilterFor(actorWithRole(auth.RoleAdmin), visibility.KindUsers, visibility.IntentRead)
			Expect(p.ExcludeID).NotTo(BeNil())
			Expect(*p.ExcludeID).To(Equal(int64(42)))
			Expect(p.SelfID).To(BeNil())
			Expect(p.ManagedBy).To(BeNil())
		})

		It("restricts a manager to direct reports", func() {
			p := visibility.FilterFor(actorWithRole(auth.RoleManager), visibility.KindUsers, visibility.IntentRead)
			Expect(p.ManagedBy).NotTo(BeNil())
			Expect(*p.ManagedBy).To(Equal(int64(42)))
		})

		It("restricts an employee to self", func() {
			p := visibility.FilterFor(actorWithRole(auth.RoleEmployee), visibility.KindUsers, visibility.IntentRead)
			Expect(p.SelfID).NotTo(BeNil())
			Expect(*p.SelfID).To(Equal(int64(42)))
		})

		It("leaves a member with the full-tenant default", func() {
			p := visibility.FilterFor(actorWithRole(auth.RoleMember), visibility.KindUsers, visibility.IntentRead)
			Expect(p.SelfID).To(BeNil())
			Expect(p.ExcludeID).To(BeNil())
			Expect(p.ManagedBy).To(BeNil())
		})
	})

	Context("worklogs and feedbacks", func() {
		It("gives an employee the owned-or-managed clause", func() {
			for _, kind := range []visibility.EntityKind{visibility.KindWorklogs, visibility.KindFeedbacks} {
				p := visibility.FilterFor(actorWithRole(auth.RoleEmployee), kind, visibility.IntentRead)
				Expect(p.ParticipantID).NotTo(BeNil())
				Expect(*p.ParticipantID).To(Equal(int64(42)))
			}
		})

		It("gives a manager the owned-or-managed clause", func() {
			p := visibility.FilterFor(actorWithRole(auth.RoleManager), visibility.KindWorklogs, visibility.IntentRead)
			Expect(p.ParticipantID).NotTo(BeNil())
			Expect(*p.ParticipantID).To(Equal(int64(42)))
		})

		It("gives an admin tenant-wide scope", func() {
			p := visibility.FilterFor(actorWithRole(auth.RoleAdmin), visibility.KindWorklogs, visibility.IntentRead)
			Expect(p.ParticipantID).To(BeNil())
		})
	})

	Context("write intent", func() {
		It("produces the same scope as reads", func() {
			for _, role := range allRoles {
				for _, kind := range allKinds {
					read := visibility.FilterFor(actorWithRole(role), kind, visibility.IntentRead)
					write := visibility.FilterFor(actorWithRole(role), kind, visibility.IntentWrite)
					Expect(write).To(Equal(read))
				}
			}
		})
	})

	Context("recognition and company values", func() {
		It("is tenant-wide for every role", func() {
			for _, role := range allRoles {
				for _, kind := range []visibility.EntityKind{visibility.KindRecognitions, visibility.KindCompanyValues} {
					p := visibility.FilterFor(actorWithRole(role), kind, visibility.IntentRead)
					Expect(p).To(Equal(visibility.TenantOnly(3)))
				}
			}
		})
	})
})

var _ = Describe("FilterForUserList", func() {
	It("lets only an admin lift the role filter with the all flag", func() {
		p := visibility.FilterForUserList(actorWithRole(auth.RoleAdmin), true)
		Expect(p).To(Equal(visibility.TenantOnly(3)))

		for _, role := range []auth.Role{auth.RoleManager, auth.RoleEmployee, auth.RoleMember} {
			scoped := visibility.FilterForUserList(actorWithRole(role), true)
			Expect(scoped).To(Equal(visibility.FilterFor(actorWithRole(role), visibility.KindUsers, visibility.IntentRead)),
				"role %s must not bypass its filter", role)
		}
	})

	It("keeps the admin exclude-self filter without the flag", func() {
		p := visibility.FilterForUserList(actorWithRole(auth.RoleAdmin), false)
		Expect(p.ExcludeID).NotTo(BeNil())
	})
})

var _ = Describe("ManagerStamp", func() {
	It("stamps the employee's manager on new records", func() {
		stamp := visibility.ManagerStamp(actorWithRole(auth.RoleEmployee))
		Expect(stamp).NotTo(BeNil())
		Expect(*stamp).To(Equal(int64(7)))
	})

	It("omits the stamp for non-employees", func() {
		for _, role := range []auth.Role{auth.RoleAdmin, auth.RoleManager, auth.RoleMember} {
			Expect(visibility.ManagerStamp(actorWithRole(role))).To(BeNil())
		}
	})

	It("tolerates an employee with no manager on file", func() {
		actor := actorWithRole(auth.RoleEmployee)
		actor.ManagerID = nil
		Expect(visibility.ManagerStamp(actor)).To(BeNil())
	})
})
