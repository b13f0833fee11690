package builder

// Constructor names used as error prefixes.
const (
	MethodChain         = "Chain"
	MethodStar          = "Star"
	MethodRandomForest  = "RandomForest"
	MethodDashboardSeed = "DashboardSeed"
)

// Size minima.
const (
	MinChainUsers  = 2
	MinStarUsers   = 2
	MinForestUsers = 1
)

// Probability bounds, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Dashboard sample shape: 20 roots with 1..4 direct referrals each, a
// second level where users 20..59 refer into 60..79 with probability 0.4, and
// 30 outside candidates referred by users 0..79.
const (
	DashboardUsers           = 100
	DashboardRoots           = 20
	DashboardFanout          = 4
	DashboardSecondLevelLo   = 20
	DashboardSecondLevelHi   = 60
	DashboardSecondTargetLo  = 60
	DashboardSecondTargets   = 20
	DashboardSecondProb      = 0.4
	DashboardCandidates      = 30
	DashboardCandidateRefs   = 80
	DashboardUserPrefix      = "user_"
	DashboardCandidatePrefix = "new_candidate_"
)
