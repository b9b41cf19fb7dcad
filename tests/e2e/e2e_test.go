// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package e2e

import (
	"testing"

	"github.com/AngouNin/Hotwings-MeMe/tests/e2e/commands"
	_ "github.com/AngouNin/Hotwings-MeMe/tests/e2e/testcases/errhandling"
	_ "github.com/AngouNin/Hotwings-MeMe/tests/e2e/testcases/snapshot"
	_ "github.com/AngouNin/Hotwings-MeMe/tests/e2e/testcases/vesting"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

func TestE2E(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "hotwings e2e test suites")
}

var _ = ginkgo.BeforeSuite(func() {
	binary, err := gexec.Build("github.com/AngouNin/Hotwings-MeMe")
	gomega.Expect(err).Should(gomega.BeNil())
	commands.CLIBinary = binary
})

var _ = ginkgo.AfterSuite(func() {
	gexec.CleanupBuildArtifacts()
})
