package health

// sampleSnapshot is the built-in monitoring dataset. It is never handed out
// directly; StaticProvider returns clones.
var sampleSnapshot = Snapshot{
	PassRate: []PassRatePoint{
		{Week: "2017-05", PassRate: 82.8},
		{Week: "2017-06", PassRate: 90.9},
		{Week: "2017-07", PassRate: 84.5},
		{Week: "2017-08", PassRate: 79.0},
		{Week: "2017-09", PassRate: 69.7},
		{Week: "2017-10", PassRate: 58.7},
	},
	Alerts: []AlertCountPoint{
		{Date: "Oct 1", Alerts: 2},
		{Date: "Oct 8", Alerts: 0},
		{Date: "Oct 15", Alerts: 1},
		{Date: "Oct 22", Alerts: 4},
		{Date: "Oct 29", Alerts: 11},
		{Date: "Nov 5", Alerts: 8},
		{Date: "Nov 12", Alerts: 6},
		{Date: "Nov 19", Alerts: 7},
	},
	Checks: []CheckHealthRow{
		{
			Check:      "image_integrity_result",
			Project:    "document-verification",
			Last8w:     74.2,
			Last7d:     61.7,
			Difference: -12.5,
			Status:     StatusCritical,
			Bars:       []int{1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		},
		{
			Check:      "image_quality_result",
			Project:    "document-verification",
			Last8w:     83.2,
			Last7d:     79.8,
			Difference: -3.4,
			Status:     StatusWarning,
			Bars:       []int{1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		},
		{
			Check:      "visual_authenticity_result",
			Project:    "document-verification",
			Last8w:     98.5,
			Last7d:     98.3,
			Difference: -0.2,
			Status:     StatusHealthy,
			Bars:       []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			Check:      "face_detection_result",
			Project:    "document-verification",
			Last8w:     99.5,
			Last7d:     99.6,
			Difference: 0.1,
			Status:     StatusHealthy,
			Bars:       []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			Check:      "face_comparison_result",
			Project:    "face-verification",
			Last8w:     99.7,
			Last7d:     99.8,
			Difference: 0.1,
			Status:     StatusHealthy,
			Bars:       []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			Check:      "facial_image_integrity_result",
			Project:    "face-verification",
			Last8w:     95.2,
			Last7d:     97.3,
			Difference: 2.1,
			Status:     StatusImproving,
			Bars:       []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
	},
	Transactions: []TransactionRow{
		{
			Transaction: "/api/v2/kyc/document/verify",
			Project:     "document-verification",
			Last8w:      89.2,
			Last7d:      61.7,
			Change:      "-27.5% worse",
			Bars8w:      []int{1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
			Bars7d:      []int{1, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			Transaction: "/api/v2/kyc/face/verify",
			Project:     "face-verification",
			Last8w:      96.1,
			Last7d:      97.3,
			Change:      "1.2% better",
			Bars8w:      []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			Bars7d:      []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			Transaction: "/api/v2/kyc/complete",
			Project:     "kyc-orchestrator",
			Last8w:      84.5,
			Last7d:      58.7,
			Change:      "-25.8% worse",
			Bars8w:      []int{1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
			Bars7d:      []int{1, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		},
	},
	AlertRules: []AlertRuleRow{
		{
			Rule:       "Pass Rate Below 75%",
			Project:    "kyc-orchestrator",
			Last8wAvg:  3.2,
			ThisWeek:   12,
			Difference: "+8.8",
		},
		{
			Rule:       "image_integrity Degradation",
			Project:    "document-verification",
			Last8wAvg:  1.8,
			ThisWeek:   9,
			Difference: "+7.2",
		},
		{
			Rule:       "Document Rejection Spike",
			Project:    "document-verification",
			Last8wAvg:  2.1,
			ThisWeek:   6,
			Difference: "+3.9",
		},
	},
}
