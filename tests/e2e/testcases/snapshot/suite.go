// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"path/filepath"

	"github.com/AngouNin/Hotwings-MeMe/tests/e2e/commands"
	"github.com/AngouNin/Hotwings-MeMe/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Snapshot]", func() {
	var baseDir string

	ginkgo.BeforeEach(func() {
		baseDir = ginkgo.GinkgoT().TempDir()
		out, err := commands.InitLedger(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		out, err = commands.Credit(baseDir, utils.Treasury, utils.TreasuryFunding)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		out, err = commands.Register(baseDir, utils.Alice+":1000000")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		out, err = commands.SettleAll(baseDir, 110_000)
		gomega.Expect(err).Should(gomega.BeNil(), out)
	})

	ginkgo.It("exports and imports into a fresh ledger", func() {
		exportDir := filepath.Join(ginkgo.GinkgoT().TempDir(), "backup")
		out, err := commands.ExportSnapshot(baseDir, exportDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Participants: 1"))

		fresh := ginkgo.GinkgoT().TempDir()
		out, err = commands.ImportSnapshot(fresh, exportDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Restored 1 participants"))

		out, err = commands.Status(fresh)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("110,000"))
		gomega.Expect(out).Should(gomega.ContainSubstring("2/8"))

		out, err = commands.Balance(fresh, utils.Alice)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("197,000"))
	})

	ginkgo.It("refuses to import over an existing ledger", func() {
		exportDir := filepath.Join(ginkgo.GinkgoT().TempDir(), "backup")
		out, err := commands.ExportSnapshot(baseDir, exportDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)

		out, err = commands.ImportSnapshot(baseDir, exportDir)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("ledger is not empty"))
	})

	ginkgo.It("lists named snapshots", func() {
		out, err := commands.CreateSnapshot(baseDir, "before-launch")
		gomega.Expect(err).Should(gomega.BeNil(), out)

		out, err = commands.ListSnapshots(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("before-launch"))
	})

	ginkgo.It("deletes a named snapshot only with --force", func() {
		out, err := commands.CreateSnapshot(baseDir, "before-launch")
		gomega.Expect(err).Should(gomega.BeNil(), out)

		out, err = commands.DeleteSnapshot(baseDir, "before-launch", false)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("--force"))

		out, err = commands.DeleteSnapshot(baseDir, "before-launch", true)
		gomega.Expect(err).Should(gomega.BeNil(), out)

		out, err = commands.ListSnapshots(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).ShouldNot(gomega.ContainSubstring("before-launch"))
	})

	ginkgo.It("migrates the database and keeps serving the ledger", func() {
		out, err := commands.DatabaseStats(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("participant"))

		target := filepath.Join(ginkgo.GinkgoT().TempDir(), "moved-db")
		out, err = commands.MigrateDatabase(baseDir, target)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("db-dir now points at"))

		out, err = commands.Run(baseDir, commands.ConfigCmd, "get", "db-dir")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("moved-db"))

		out, err = commands.Status(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("110,000"))
	})
})
