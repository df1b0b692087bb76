package github_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"reex.app/server/internal/github"
)

var _ = Describe("ParseURL", func() {
	It("extracts owner and repo from a canonical URL", func() {
		ref, err := github.ParseURL("https://github.com/octocat/Hello-World")
		Expect(err).NotTo(HaveOccurred())
		Expect(ref.Owner).To(Equal("octocat"))
		Expect(ref.Repo).To(Equal("Hello-World"))
		Expect(ref.URL).To(Equal("https://github.com/octocat/Hello-World"))
		Expect(ref.FullName()).To(Equal("octocat/Hello-World"))
	})

	It("preserves case in owner and repo", func() {
		ref, err := github.ParseURL("https://github.com/OctoCat/Spoon-Knife")
		Expect(err).NotTo(HaveOccurred())
		Expect(ref.Owner).To(Equal("OctoCat"))
		Expect(ref.Repo).To(Equal("Spoon-Knife"))
	})

	It("ignores path segments beyond owner and repo", func() {
		ref, err := github.ParseURL("https://github.com/octocat/Hello-World/tree/main/src")
		Expect(err).NotTo(HaveOccurred())
		Expect(ref.Owner).To(Equal("octocat"))
		Expect(ref.Repo).To(Equal("Hello-World"))
	})

	It("accepts trailing slashes", func() {
		ref, err := github.ParseURL("https://github.com/octocat/Hello-World/")
		Expect(err).NotTo(HaveOccurred())
		Expect(ref.Repo).To(Equal("Hello-World"))
	})

	DescribeTable("rejects unusable input",
		func(raw string) {
			_, err := github.ParseURL(raw)
			Expect(err).To(MatchError(github.ErrInvalidURL))
		},
		Entry("not a URL at all", "definitely not a url"),
		Entry("missing scheme", "github.com/octocat/Hello-World"),
		Entry("wrong host", "https://gitlab.com/x/y"),
		Entry("subdomain of the canonical host", "https://gist.github.com/octocat/abc123"),
		Entry("owner only", "https://github.com/octocat"),
		Entry("empty path", "https://github.com/"),
		Entry("empty string", ""),
	)
})
