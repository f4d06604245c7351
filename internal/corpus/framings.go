package corpus

import "github.com/ssxfund/tribune/internal/model"

// Framings returns the persuasion metadata for the three outreach stances.
// The framing title is what the letter leads under; the avoid list is as
// load-bearing as the lead list.
func Framings() []model.PoliticalFraming {
	return []model.PoliticalFraming{
		{
			Stance:  model.StanceReceptive,
			Framing: "Finish the Job: A Tier 2 Benefit for Every Retiree",
			LeadWith: []string{
				"elderly poverty falls from 10.2% to 3.8% under the proposal",
				"the Tier 2 benefit averages $1,150 a month by 2045",
				"62% of new revenue comes from the top 0.1% of households",
			},
			Avoid: []string{
				"overlong caveats about projection uncertainty",
				"framing the fund as a compromise or a half measure",
			},
			Arguments: []string{
				"Social Security is the most successful anti-poverty program in American history; extension completes it",
				"mark-to-market taxation closes the deferral loophole that lets the largest fortunes compound untaxed",
				"the investment fund follows the proven Canada Pension Plan model",
			},
			Recipients: []string{
				"progressive caucus members",
				"retiree advocacy organizations",
				"labor federation policy directors",
			},
		},
		{
			Stance:  model.StanceSkeptical,
			Framing: "Solvency First: Extending the Trust Fund Through 2095",
			LeadWith: []string{
				"the combined trust fund stays solvent through 2095 without benefit cuts",
				"no payroll tax increase on wages under $400,000",
				"the fund's 6.2% real return assumption sits below the 70-year historical average",
			},
			Avoid: []string{
				"leading with the wealth tax before the solvency math",
				"moral framing about billionaires",
				"comparisons to foreign social models",
			},
			Arguments: []string{
				"the status quo is a 17% across-the-board cut when the trust fund depletes; inaction is the radical option",
				"mark-to-market revenue is scored conservatively at $184B a year with a published sensitivity range",
				"the fund's governance board is majority independent with a statutory fiduciary duty",
			},
			Recipients: []string{
				"moderate members in swing districts",
				"fiscal policy staff",
				"editorial boards of regional papers",
			},
		},
		{
			Stance:  model.StanceHostile,
			Framing: "Protect & Extend Social Security Through Market Returns",
			LeadWith: []string{
				"this is the market-investment reform conservatives proposed in 2005, with the risk held collectively",
				"the plan cuts no benefits and raises no taxes on anyone earning under $400,000",
				"every dollar of fund return is a dollar of payroll tax pressure avoided",
			},
			Avoid: []string{
				"the phrase 'wealth tax' in the opening paragraph",
				"redistribution framing of any kind",
				"citing advocacy organizations as sources",
			},
			Arguments: []string{
				"letting the trust fund buy equities is what every state pension and the Thrift Savings Plan already does",
				"mark-to-market is a timing change to when existing capital gains tax is due, not a new tax base",
				"seniors in every district receive the Tier 2 benefit; the district tables are attached",
			},
			Recipients: []string{
				"members with large retiree populations and safe seats",
				"tax-writing committee minority staff",
				"business-aligned policy groups",
			},
		},
	}
}
