// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package errhandling

import (
	"github.com/AngouNin/Hotwings-MeMe/tests/e2e/commands"
	"github.com/AngouNin/Hotwings-MeMe/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Error handling]", func() {
	var baseDir string

	ginkgo.BeforeEach(func() {
		baseDir = ginkgo.GinkgoT().TempDir()
	})

	ginkgo.It("lists every missing init flag when prompting is off", func() {
		out, err := commands.Run(baseDir, commands.VestingCmd, "init", "--mint", utils.Mint)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("missing required options"))
		gomega.Expect(out).Should(gomega.ContainSubstring("--admin"))
		gomega.Expect(out).Should(gomega.ContainSubstring("--treasury"))
		gomega.Expect(out).ShouldNot(gomega.ContainSubstring("--mint\n"))
	})

	ginkgo.It("fails before initialization", func() {
		out, err := commands.Status(baseDir)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("ledger not initialized"))
	})

	ginkgo.It("reports an underfunded treasury through doctor", func() {
		out, err := commands.InitLedger(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		out, err = commands.Register(baseDir, utils.Alice+":1000000")
		gomega.Expect(err).Should(gomega.BeNil(), out)

		out, err = commands.Doctor(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Treasury Coverage: treasury holds 0 but 1,000,000 is locked"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Participants: 1 of 1000"))
	})

	ginkgo.It("requires a signer for admin operations", func() {
		out, err := commands.Run(baseDir, commands.AdminCmd, "market-cap", "60000")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("no signer identity"))
	})

	ginkgo.It("rejects an absurd market cap", func() {
		out, err := commands.InitLedger(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)

		out, err = commands.SettleAll(baseDir, 10_000_000)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("invalid market cap value"))
	})

	ginkgo.It("persists config values", func() {
		out, err := commands.Run(baseDir, commands.ConfigCmd, "set", "signer", utils.Authority)
		gomega.Expect(err).Should(gomega.BeNil(), out)

		out, err = commands.Run(baseDir, commands.ConfigCmd, "get", "signer")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(utils.ContainsAddress(out, utils.Authority)).Should(gomega.BeTrue())

		out, err = commands.Run(baseDir, commands.ConfigCmd, "set", "db-type", "leveldb")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("unknown database type"))
	})
})
