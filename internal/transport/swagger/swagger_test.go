package swagger_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSwagger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Swagger Suite")
}

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("validates against the OpenAPI 3 schema", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("documents every entity surface", func() {
		for _, path := range []string{
			"/tenant",
			"/users/signup",
			"/users/signin",
			"/users/info",
			"/users/profile",
			"/users",
			"/users/invite",
			"/users/accept-invite",
			"/worklog",
			"/feedback",
			"/recognition",
			"/company-values",
			"/stats",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("exposes full CRUD on the entity collections", func() {
		for _, path := range []string{"/worklog", "/feedback", "/recognition", "/company-values"} {
			item := doc.Paths.Find(path)
			Expect(item).NotTo(BeNil())
			Expect(item.Get).NotTo(BeNil(), "%s GET", path)
			Expect(item.Post).NotTo(BeNil(), "%s POST", path)
			Expect(item.Put).NotTo(BeNil(), "%s PUT", path)
			Expect(item.Delete).NotTo(BeNil(), "%s DELETE", path)
		}
	})
})
