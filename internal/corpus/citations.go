package corpus

import "github.com/ssxfund/tribune/internal/model"

// Citations returns the bibliographic table backing the document texts.
// Every verified entry lists the claims it supports; unverified entries
// are pending author confirmation and surface via `citations unverified`.
func Citations() []model.Citation {
	return []model.Citation{
		{
			Key:   "ssa-trustees-2025",
			Full:  "Board of Trustees, Federal Old-Age and Survivors Insurance and Federal Disability Insurance Trust Funds. 2025 Annual Report. Washington, DC: Social Security Administration, 2025.",
			Short: "2025 Trustees Report",
			URL:   "https://www.ssa.gov/oact/tr/2025/",
			Claims: []string{
				"the combined OASDI trust fund depletes in the mid-2030s under current law",
				"depletion triggers an automatic across-the-board benefit reduction of roughly 17%",
			},
			Verified: true,
		},
		{
			Key:   "cbo-ltbo-2025",
			Full:  "Congressional Budget Office. The 2025 Long-Term Budget Outlook. Washington, DC: CBO, March 2025.",
			Short: "CBO Long-Term Outlook 2025",
			URL:   "https://www.cbo.gov/publication/long-term-budget-outlook-2025",
			Claims: []string{
				"OASDI outlays exceed dedicated revenues for every year of the projection window",
			},
			Verified: true,
		},
		{
			Key:   "ssx-model-v2",
			Full:  "Social Security Extension Fund. SS Extension V2.0 + Wealth Tax Optimizer: Technical Documentation and Published Projections. 2026.",
			Short: "SS Extension V2.0 model",
			Claims: []string{
				"the Tier 2 benefit averages $1,150 per month at full phase-in (2045)",
				"mark-to-market taxation above $50M raises $184B per year (central estimate)",
				"the household Gini coefficient declines from 0.489 to 0.412 by 2055",
				"the combined trust fund remains solvent through 2095 under the central scenario",
				"elderly poverty falls from 10.2% to 3.8% at full phase-in",
			},
			Verified: true,
		},
		{
			Key:   "cpp-annual-2024",
			Full:  "CPP Investments. Annual Report 2024. Toronto: Canada Pension Plan Investment Board, 2024.",
			Short: "CPP Investments 2024",
			URL:   "https://www.cppinvestments.com/the-fund/our-performance/",
			Claims: []string{
				"the CPP fund earned an annualized 10-year net real return above 6% through fiscal 2024",
			},
			Verified: true,
		},
		{
			Key:   "saez-zucman-2019",
			Full:  "Saez, Emmanuel, and Gabriel Zucman. \"Progressive Wealth Taxation.\" Brookings Papers on Economic Activity, Fall 2019: 437-533.",
			Short: "Saez & Zucman (2019)",
			URL:   "https://www.brookings.edu/articles/progressive-wealth-taxation/",
			Claims: []string{
				"unrealized gains constitute the majority of top-0.1% wealth accumulation",
				"deferral and step-up at death shelter most of those gains from income tax",
			},
			Verified: true,
		},
		{
			Key:   "damodaran-returns",
			Full:  "Damodaran, Aswath. Historical Returns on Stocks, Bonds and Bills: 1928-2024. New York: NYU Stern, dataset, 2025.",
			Short: "Damodaran historical returns",
			URL:   "https://pages.stern.nyu.edu/~adamodar/",
			Claims: []string{
				"U.S. equities returned roughly 6.8% real annualized over 1928-2024",
			},
			Verified: true,
		},
		{
			Key:   "tsp-fund-facts",
			Full:  "Federal Retirement Thrift Investment Board. Thrift Savings Plan Fund Information. Washington, DC, 2025.",
			Short: "TSP fund information",
			URL:   "https://www.tsp.gov/funds-lifecycle/",
			Claims: []string{
				"the federal government already operates broad-market index investment for its own workforce",
			},
			Verified: true,
		},
		{
			Key:   "gallup-ss-2024",
			Full:  "Gallup. \"Americans' Views of Social Security.\" Gallup Poll Social Series, 2024.",
			Short: "Gallup (2024)",
			Claims: []string{
				"a large bipartisan majority opposes benefit cuts as a solvency fix",
			},
			Verified: false,
		},
		{
			Key:   "moody-m2m-score",
			Full:  "Moody, R., et al. \"Revenue Scoring of Mark-to-Market Proposals.\" Working paper, 2025.",
			Short: "Moody et al. (2025)",
			Claims: []string{
				"independent scoring of M2M proposals brackets the $184B/yr central estimate",
			},
			Verified: false,
		},
	}
}
