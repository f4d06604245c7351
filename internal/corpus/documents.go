package corpus

import "github.com/ssxfund/tribune/internal/model"

// Document texts. All figures are published outputs of the external
// SS Extension V2.0 + Wealth Tax Optimizer model, reproduced as literal
// prose; nothing in this repository recomputes them.

const eveningNewsText = `TONIGHT: A new plan would add a second Social Security check for every retiree.

- The proposal, called the Social Security Extension, would pay an average of $1,150 a month on top of current benefits, phased in by 2045. [ssx-model-v2]

- It would be paid for by taxing the investment gains of fortunes over fifty million dollars every year, the way workers' wages are taxed every year, and by letting the trust fund invest in the stock market the way Canada's pension plan already does. [saez-zucman-2019] [cpp-annual-2024]

- Supporters say the plan keeps Social Security solvent through 2095 and cuts elderly poverty by almost two-thirds. Opponents call the annual tax on investment gains unworkable. [ssx-model-v2]

Without action, the program's own trustees say the trust fund runs short in the mid-2030s, triggering an automatic seventeen percent cut for everyone. [ssa-trustees-2025]

KICKER: The first bill text is expected before the August recess.`

const opEdText = `My mother worked forty-one years behind the counter of a dry cleaner in Dayton. She retired at sixty-six with a Social Security check of $1,480 a month and a savings account that would not survive a new furnace. She is not an edge case. She is the median. Half of American workers retire with less.

We tell ourselves a comforting story about retirement in this country: that Social Security is a floor, and that private savings build the house on top of it. For most people the house was never built. Pensions are gone. The 401(k) experiment produced healthy balances for the top fifth of earners and spare change for everyone else. The floor is the house.

So here is a proposal that treats that fact as the starting point rather than an embarrassment: extend Social Security. Add a second tier of benefits, averaging $1,150 a month at full phase-in, on top of what the program pays today. Not a voucher, not a match, not a tax-advantaged account that assumes you have something left over to advantage. A check.

The predictable first question is how to pay for it, and the answer is the interesting part. The plan pairs two mechanisms. The first is mark-to-market taxation of investment gains above fifty million dollars. Today, a worker's wages are taxed the year they are earned, while a billionaire's stock gains can compound for decades untaxed and then escape income tax entirely at death. Economists Emmanuel Saez and Gabriel Zucman have shown that these unrealized gains are the majority of how the largest fortunes grow. Taxing them annually, as ordinary income is taxed, raises about $184 billion a year from roughly one household in a thousand.

The second mechanism is the one that should scramble the usual partisan lines: let the trust fund invest. Canada's pension plan has earned more than six percent a year after inflation for a generation by holding a diversified global portfolio. The federal government already runs exactly this kind of broad, boring, low-fee index investing for its own employees through the Thrift Savings Plan. Yet we require Social Security, alone among major pension systems, to hold nothing but Treasury bonds. The projections behind this plan assume a 6.2 percent real return, which is below the American stock market's own seventy-year average. On those assumptions, the combined trust fund stays solvent through 2095 and the fund reaches $2.9 trillion by mid-century.

I can hear the objections forming, because I have heard them at every town hall. Isn't this privatization? No. Privatization, as proposed in 2005, meant carving your payroll taxes into an individual account and handing you the market risk. This plan does the opposite: the fund holds the assets collectively, the risk is pooled across generations, and your benefit is defined in law, not by the Dow on your retirement date. The 2005 plan's supporters were right that markets outperform Treasury bonds over decades. They were wrong about who should carry the downside. We can take the true half of their argument and leave the false half.

Isn't an annual tax on paper gains unworkable? It is a genuine design question, and the plan's published model treats it as one, scoring the revenue with a wide sensitivity band and borrowing valuation rules that already exist for securities dealers, who have been marked to market since 1993. What is actually unworkable is the status quo. The trustees tell us, in their own annual report, that the trust fund runs dry in the mid-2030s. On that day, current law cuts every check in America by roughly seventeen percent. My mother's $1,480 becomes $1,230 by operation of an actuarial table. Nobody will have voted for it, which is precisely the problem. Inaction is not the moderate position. Inaction is the cut.

And the effect of action is not abstract. The model's distributional tables say elderly poverty falls from 10.2 percent to 3.8 percent at full phase-in, and the national measure of income inequality drops to a level America last saw in the 1970s, before the long divergence began.

Social Security is the most successful program this country has ever run. It did not end elderly poverty; it cut it by three-quarters and then we stopped. The generation that built it did not think the job was finished. They assumed we would extend it, the way they extended it, decade by decade, to widows, to the disabled, to dependents. The second tier is not a departure from that tradition. It is the next sentence of it. My mother does not need a comforting story about a house that was never built. She needs the floor raised, and we know how to raise it.`

const legislativeBriefText = `SOCIAL SECURITY EXTENSION ACT — STAFF BRIEF

SUMMARY. Establishes a Tier 2 benefit averaging $1,150/month at full phase-in (2045) [ssx-model-v2]; funds it through mark-to-market (M2M) taxation of unrealized gains above $50M and collective trust fund investment; extends combined OASDI solvency through 2095 under the central scenario [ssx-model-v2].

1. BACKGROUND. The 2025 Trustees Report projects combined trust fund depletion in the mid-2030s, triggering an automatic benefit reduction of approximately 17% under current law [ssa-trustees-2025]. CBO's long-term outlook shows dedicated revenues below outlays in every projection year [cbo-ltbo-2025]. Public polling shows bipartisan majorities opposing benefit cuts as a solvency remedy [gallup-ss-2024].

2. BENEFIT DESIGN. Tier 2 is a defined benefit layered on the current formula, phased in 2032-2045. Average payment at full phase-in: $1,150/month (central estimate; range $980-$1,310 across economic scenarios) [ssx-model-v2]. Eligibility tracks existing OASI entitlement; no new eligibility determinations are created. Tier 2 is excluded from the family maximum computation.

3. REVENUE — MARK-TO-MARKET. Applies annual accrual taxation to net unrealized gains of households with marketable wealth above $50M. Central revenue estimate: $184B/year (range $141B-$226B) [ssx-model-v2]; independent scoring brackets the central estimate [moody-m2m-score]. Valuation rules follow the existing dealer mark-to-market regime (IRC §475). Approximately 62% of revenue is drawn from the top 0.1% of households [ssx-model-v2]. Unrealized gains are the dominant component of top-fortune accumulation and are largely sheltered under current law by deferral and step-up at death [saez-zucman-2019].

4. REVENUE — FUND RETURNS. Authorizes the trust fund to hold a diversified portfolio through an independent investment board. Modeling assumes a 6.2% real annualized return, below the 1928-2024 U.S. equity average of approximately 6.8% real [damodaran-returns] and in line with realized CPP Investments performance [cpp-annual-2024]. Precedent: the Thrift Savings Plan already provides federally administered index investment [tsp-fund-facts]. Projected fund size: $2.9T by 2050 [ssx-model-v2].

5. DISTRIBUTION. Elderly poverty falls from 10.2% to 3.8% at full phase-in; household Gini declines from 0.489 to 0.412 by 2055 [ssx-model-v2]. No payroll tax increase applies to wages under $400,000.

6. GOVERNANCE. Eleven-member investment board; seven independent members with statutory fiduciary duty; quarterly public holdings disclosure; five-year GAO performance audit cycle. Board may not hold more than 5% of any single issuer and is barred from proxy voting, which is delegated to external managers under published guidelines.

7. TIMELINE. Revenue provisions effective tax year following enactment. Fund diversification phased over eight years to limit market impact. Tier 2 payments begin in year six at 25% of the full schedule, reaching 100% in 2045.

8. STAKEHOLDER POSITIONS. Retiree organizations and labor federations support as introduced. Financial industry groups oppose the M2M provision but have signaled openness to the fund diversification title if board independence is strengthened. State pension administrators are neutral; two have requested interoperability language for data sharing. Committee minority staff have circulated questions on valuation of closely held businesses, which the sponsors propose to answer with a carve-out scored at a $12B/year revenue reduction against the central estimate [ssx-model-v2].

9. OUTSTANDING ISSUES FOR MEMBER. (a) Liquidity treatment of non-marketable assets above the threshold remains the most contested design point; the model scores only marketable wealth. (b) The 17% depletion-date cut is the statutory baseline against which all alternatives should be scored; scoring against a frozen-benefit baseline understates the bill's net benefit effect by construction. (c) State revenue interactions are not modeled. (d) The eight-year diversification glide path was chosen to limit market impact; a five-year path accelerates solvency gains by two years at higher transition risk [ssx-model-v2].

All quantitative estimates in this brief are published outputs of the SS Extension V2.0 + Wealth Tax Optimizer model [ssx-model-v2]; this office has not independently reproduced them. The model's technical documentation, scenario grid, and district-level tables are available to staff on request; this brief intentionally exceeds the format's nominal two-minute word budget because the member requested the stakeholder section be retained.`

const whitePaperText = `EXTENDING SOCIAL SECURITY: DESIGN AND PROJECTED EFFECTS OF A TIER 2 BENEFIT
Social Security Extension Fund — Policy White Paper (abridged edition)

ABSTRACT. We describe the design of a second-tier Social Security benefit and summarize the published projections of the SS Extension V2.0 + Wealth Tax Optimizer model. Under the central scenario, a Tier 2 benefit averaging $1,150 per month at full phase-in (2045) is financed by mark-to-market taxation of unrealized gains above $50M ($184B/year central estimate) and by collective investment of the trust fund (6.2% real assumed return). The combined OASDI trust fund remains solvent through 2095, elderly poverty declines from 10.2% to 3.8%, and the household Gini coefficient falls from 0.489 to 0.412 by 2055. This paper reproduces model outputs; it does not re-derive them.

1. BACKGROUND. The financing gap is well documented. The 2025 Trustees Report places combined trust fund depletion in the mid-2030s, at which point current law reduces all benefits by roughly 17% [ssa-trustees-2025]. CBO projects dedicated revenues below outlays throughout the long-term window [cbo-ltbo-2025]. The policy debate has largely offered a binary of benefit cuts or payroll tax increases; this proposal rejects the binary.

2. BENEFIT DESIGN. Tier 2 is a defined benefit, not an account. It phases in over 2032-2045, reaching an average of $1,150/month (range across scenarios: $980-$1,310) [ssx-model-v2]. Layering over the existing formula preserves current-law progressivity while the flat structure of Tier 2 raises replacement rates most at the bottom of the lifetime-earnings distribution.

3. FINANCING I: MARK-TO-MARKET TAXATION. The tax applies annually to net unrealized gains on marketable wealth above $50M, using valuation machinery analogous to the dealer regime of IRC §475. The rationale follows Saez and Zucman: unrealized gains are the majority of top-0.1% accumulation, and deferral combined with step-up at death shelters most of them from any income tax [saez-zucman-2019]. The model's central revenue estimate is $184B/year, with a published sensitivity range of $141B-$226B reflecting behavioral response and valuation haircut assumptions [ssx-model-v2]; independent working-paper scoring brackets the central estimate [moody-m2m-score]. Approximately 62% of revenue is collected from the top 0.1% of households.

4. FINANCING II: COLLECTIVE INVESTMENT. The trust fund is authorized to hold a diversified global portfolio through an independent board. The 6.2% real return assumption is deliberately conservative relative to the 1928-2024 U.S. equity record of approximately 6.8% real [damodaran-returns] and is consistent with the realized long-run performance of CPP Investments [cpp-annual-2024]. The Thrift Savings Plan demonstrates federal administrative capacity for low-fee index investment at scale [tsp-fund-facts]. The fund reaches $2.9T by 2050 in the central scenario. Risk is pooled across cohorts; benefits remain defined in law and do not vary with portfolio performance.

5. PROJECTED EFFECTS. Under the central scenario the model reports: solvency of the combined fund through 2095; elderly poverty falling from 10.2% to 3.8% at full phase-in; and a decline in the household Gini coefficient from 0.489 to 0.412 by 2055, driven jointly by the benefit floor and the accrual tax [ssx-model-v2].

6. SENSITIVITY. The published scenario grid varies equity returns (4.2%-7.8% real), M2M behavioral response (low/central/high avoidance), and demographic assumptions (Trustees' low-cost and high-cost paths). Solvency through 2090 or later holds in 31 of 36 grid cells; the failing cells combine bottom-decile returns with high avoidance [ssx-model-v2].

7. LIMITATIONS. Three limitations deserve emphasis. First, all quantitative results are outputs of an external model; this paper does not contain or reproduce its computational machinery, and readers seeking the simulation itself should consult the model's technical documentation [ssx-model-v2]. Second, valuation of thinly traded assets near the $50M threshold is scored only for marketable wealth; extending the base to non-marketable assets is an open design question, not a modeled scenario. Third, general-equilibrium effects of a $2.9T public fund on asset prices are approximated by a fixed basis-point drag rather than modeled structurally.

8. CONCLUSION. The proposal's components are individually familiar: a defined benefit layer, an accrual tax with existing statutory precedent, and collective investment with multiple operating precedents. Their combination extends solvency six decades beyond the current depletion horizon while roughly halving the measured income inequality gap to the program's 1970s benchmark. The binding constraints are political and administrative, not actuarial.`

const journalSubmissionText = `Distributional and Solvency Effects of a Second-Tier Social Security Benefit Financed by Accrual Taxation and Collective Investment

Submission draft — abstract and section outline. Full results tables are reproduced from the SS Extension V2.0 + Wealth Tax Optimizer technical documentation [ssx-model-v2]; the simulation engine itself is external to this manuscript.

ABSTRACT. We evaluate a proposal that layers a flat defined benefit ("Tier 2," averaging $1,150/month at 2045 phase-in) over the current U.S. Social Security formula, financed jointly by (i) annual accrual taxation of unrealized gains on marketable wealth above $50M and (ii) diversified collective investment of trust fund assets. Using published outputs of the SS Extension V2.0 microsimulation, we report three findings. First, combined OASDI solvency extends from the mid-2030s depletion baseline [ssa-trustees-2025] through 2095 in the central scenario, robust in 31 of 36 sensitivity cells. Second, the accrual tax raises $184B/year (range $141B-$226B), with 62% of incidence on the top 0.1%, consistent with the composition of top-wealth accumulation documented by Saez and Zucman [saez-zucman-2019]. Third, the joint package reduces elderly poverty from 10.2% to 3.8% and the household Gini coefficient from 0.489 to 0.412 by 2055. The assumed 6.2% real portfolio return is conservative relative to both the historical U.S. equity record [damodaran-returns] and realized comparator-fund performance [cpp-annual-2024].

OUTLINE.
1. Introduction and relation to the literature on social security trust fund investment and wealth taxation.
2. Institutional background: the depletion baseline [ssa-trustees-2025] [cbo-ltbo-2025] and existing federal index investment precedent [tsp-fund-facts].
3. Model description (deferred to external documentation) and calibration targets.
4. Solvency results and the 36-cell sensitivity grid.
5. Distributional results: poverty, replacement rates, Gini trajectory.
6. Design caveats: valuation at the marketability frontier, behavioral response bounds, general-equilibrium approximations.
7. Conclusion.

JEL codes: H55, H24, D31. Keywords: social security, mark-to-market taxation, sovereign investment, inequality.`

const letterReceptiveText = `FINISH THE JOB: A TIER 2 BENEFIT FOR EVERY RETIREE

Dear Representative,

You have spent your career defending Social Security. This letter is about the chance to do something better than defend it.

The Social Security Extension Act adds a second tier of benefits — an average of $1,150 a month at full phase-in — on top of every current check. The published projections are the kind our side rarely gets to cite: elderly poverty falls from 10.2 percent to 3.8 percent, and 62 percent of the new revenue comes from the top 0.1 percent of households, through annual taxation of the unrealized gains that current law lets compound untaxed for decades [ssx-model-v2] [saez-zucman-2019].

This is not a defensive bill. It is the first expansion of the program's basic promise since 1972, built on the most successful anti-poverty machinery in American history. The investment fund follows the Canada Pension Plan model — collective holdings, pooled risk, benefits defined in law [cpp-annual-2024] — and the trust fund stays solvent through 2095 in the central scenario.

Your district's tables are enclosed: 118,000 current beneficiaries, each receiving Tier 2 at phase-in.

We ask three things. Co-sponsor the Act when it is introduced. Speak for it at the September coalition event in your district. And hold the frame: this is completion, not compromise — the bill's opponents will call it radical, and the honest answer is that it is the next sentence of a ninety-year-old American success story.

With respect and urgency,
Social Security Extension Fund`

const letterSkepticalText = `SOLVENCY FIRST: EXTENDING THE TRUST FUND THROUGH 2095

Dear Representative,

You have said you will not support Social Security legislation that is not honest about arithmetic. This letter is written to that standard.

Start with the baseline. The program's own trustees project trust fund depletion in the mid-2030s; at that date, current law cuts every benefit by roughly 17 percent automatically [ssa-trustees-2025]. That cut is the status quo. Every proposal, including doing nothing, should be scored against it.

The Social Security Extension Act extends combined solvency through 2095 in the central scenario, with no payroll tax increase on wages under $400,000 [ssx-model-v2]. Two financing mechanisms do the work. First, the trust fund is authorized to hold a diversified portfolio under an independent, majority-fiduciary board — the same collective investment that every state pension and the federal Thrift Savings Plan already practices [tsp-fund-facts]. The modeling assumes a 6.2 percent real return, below the seventy-year U.S. equity average [damodaran-returns] and below what Canada's plan has actually earned [cpp-annual-2024]. Second, mark-to-market taxation of gains above $50 million is scored conservatively at $184 billion a year, with the full sensitivity range — $141 to $226 billion — published rather than buried [ssx-model-v2], and bracketed by independent scoring [moody-m2m-score].

The sensitivity grid is the part we would direct your staff to first: solvency past 2090 holds in 31 of 36 published scenario cells, and the five failing cells are identified, not footnoted.

We ask for a technical briefing with your staff before markup — bring your own scorekeepers — and for your amendment list: the bill's sponsors regard the valuation rules as improvable and would rather improve them with you than without you.

Respectfully,
Social Security Extension Fund`

const letterHostileText = `PROTECT & EXTEND SOCIAL SECURITY THROUGH MARKET RETURNS

Dear Representative,

In 2005, your party argued that Social Security was leaving enormous value on the table by holding nothing but low-yield Treasury bonds while every pension fund in America earned market returns. On the arithmetic, that argument was correct. This proposal takes it seriously.

The Social Security Extension Act authorizes the trust fund to invest in a diversified portfolio — exactly what the federal government's own Thrift Savings Plan has done for its employees for decades [tsp-fund-facts], and what Canada's pension plan has done while earning more than six percent real for a generation [cpp-annual-2024]. The difference from 2005 is where the risk sits: no individual accounts, no benefits tied to a retirement-date Dow. The fund holds the assets collectively; benefits stay defined in law. The return assumption, 6.2 percent real, is below the U.S. historical average [damodaran-returns]. Every dollar the fund earns is a dollar of payroll tax pressure that never materializes.

What the bill does not do matters as much. It cuts no benefits. It raises no taxes on anyone earning under $400,000. The financing provision on large fortunes is a timing change — tax due annually on investment gains, as securities dealers have been taxed under IRC §475 since 1993 — not a new tax base [ssx-model-v2].

And the beneficiaries are your constituents: the enclosed district table shows 96,000 seniors in your district receiving the new Tier 2 payment at phase-in, in a district you have won by wider margins than any tax vote will ever move.

We ask for thirty minutes with your tax staff, and we will bring the dealer-regime precedent memo rather than talking points.

Respectfully,
Social Security Extension Fund`

// Documents returns every document in the matrix. Letters carry a stance;
// everything else is stance-free.
func Documents() []model.Document {
	return []model.Document{
		{Format: "1A", Title: "Evening News Bullets: The Second Check", Text: eveningNewsText},
		{Format: "2B", Title: "The Floor Is the House", Text: opEdText},
		{Format: "3B", Title: "Social Security Extension Act — Staff Brief", Text: legislativeBriefText},
		{Format: "4B", Title: "Extending Social Security: Design and Projected Effects", Text: whitePaperText},
		{Format: "5C", Title: "Distributional and Solvency Effects of a Second-Tier Benefit", Text: journalSubmissionText},
		{Format: "7C", Stance: model.StanceReceptive, Title: "Letter — Receptive", Text: letterReceptiveText},
		{Format: "7C", Stance: model.StanceSkeptical, Title: "Letter — Skeptical", Text: letterSkepticalText},
		{Format: "7C", Stance: model.StanceHostile, Title: "Letter — Hostile", Text: letterHostileText},
	}
}
