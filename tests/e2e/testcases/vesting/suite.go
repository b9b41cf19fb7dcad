// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"github.com/AngouNin/Hotwings-MeMe/tests/e2e/commands"
	"github.com/AngouNin/Hotwings-MeMe/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Vesting]", ginkgo.Ordered, func() {
	var baseDir string

	ginkgo.BeforeAll(func() {
		baseDir = ginkgo.GinkgoT().TempDir()

		out, err := commands.InitLedger(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Vesting ledger initialized"))

		out, err = commands.Credit(baseDir, utils.Treasury, utils.TreasuryFunding)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		out, err = commands.Credit(baseDir, utils.VenueVault, 1_000_000)
		gomega.Expect(err).Should(gomega.BeNil(), out)
	})

	ginkgo.It("refuses a second initialization", func() {
		out, err := commands.InitLedger(baseDir)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("ledger already initialized"))
	})

	ginkgo.It("registers a batch of participants", func() {
		out, err := commands.Register(baseDir, utils.Alice+":1000000", utils.Bob+":250000:"+utils.BobAccount)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Registered 2 participants"))
		gomega.Expect(out).Should(gomega.ContainSubstring("[UserRegistered]"))

		out, err = commands.Participants(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(utils.ContainsAddress(out, utils.Alice)).Should(gomega.BeTrue())
		gomega.Expect(utils.ContainsAddress(out, utils.BobAccount)).Should(gomega.BeTrue())
	})

	ginkgo.It("rejects a batch with a duplicate as a whole", func() {
		out, err := commands.Register(baseDir, utils.Carol+":10", utils.Alice+":10")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("user already registered"))

		out, err = commands.Show(baseDir, utils.Carol)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("user not found"))
	})

	ginkgo.It("settles the first tier with tax", func() {
		out, err := commands.SettleAll(baseDir, 45_000)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("[MilestoneAdvanced] tier 0 -> 1"))
		gomega.Expect(out).Should(gomega.ContainSubstring("released 100,000 at tier 1"))

		out, err = commands.Balance(baseDir, utils.Alice, utils.BobAccount, utils.Burn, utils.Marketing)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("98,500"))
		gomega.Expect(out).Should(gomega.ContainSubstring("24,625"))
		// burn and marketing get 750 + 187 and 750 + 188
		gomega.Expect(out).Should(gomega.ContainSubstring("937"))
		gomega.Expect(out).Should(gomega.ContainSubstring("938"))
	})

	ginkgo.It("records a market cap that does not reach the next tier", func() {
		out, err := commands.SettleAll(baseDir, 50_000)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("next milestone not reached yet"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Next milestone at 105,500"))

		out, err = commands.Status(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("50,000"))
		gomega.Expect(out).Should(gomega.ContainSubstring("1/8"))

		out, err = commands.StatusOutput(baseDir, "json")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring(`"marketCap": 50000`))
		gomega.Expect(out).Should(gomega.ContainSubstring(`"unlocked": 125000`))

		out, err = commands.StatusOutput(baseDir, "yaml")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("currentMilestone: 1"))
	})

	ginkgo.It("rejects a foreign settlement account", func() {
		out, err := commands.Settle(baseDir, 120_000, utils.Bob+":"+utils.Alice)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("account not found"))

		out, err = commands.Status(baseDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("1/8"))
	})

	ginkgo.It("locks venue purchases for the buyer", func() {
		out, err := commands.VenuePurchase(baseDir, utils.Carol, utils.CarolAccount, 5_000)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("[UserRegistered]"))
		gomega.Expect(out).Should(gomega.ContainSubstring("[VenuePurchaseLocked]"))

		out, err = commands.Show(baseDir, utils.Carol)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("5,000"))
		gomega.Expect(utils.ContainsAddress(out, utils.CarolAccount)).Should(gomega.BeTrue())

		out, err = commands.Balance(baseDir, utils.CarolAccount)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).ShouldNot(gomega.ContainSubstring("5,000"))
	})

	ginkgo.It("gates admin operations on the authority", func() {
		out, err := commands.Admin(baseDir, utils.Stranger, "market-cap", "60000")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("not authorized"))

		out, err = commands.AddExempt(baseDir, utils.Authority, utils.Alice)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("is now exempt"))

		out, err = commands.AddExempt(baseDir, utils.Authority, utils.Alice)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("was already exempt"))
	})

	ginkgo.It("releases everything once the last tier is crossed", func() {
		out, err := commands.SettleAll(baseDir, 2_600_000)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("(full unlock)"))

		out, err = commands.Show(baseDir, utils.Alice)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("1,000,000"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Nothing due"))
	})
})
