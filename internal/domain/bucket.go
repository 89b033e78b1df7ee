package domain

// DueBucket classifies a ticket by its distance to the due date.
type DueBucket string

const (
	BucketOverdue   DueBucket = "Overdue"
	BucketDueSoon7  DueBucket = "DueSoon7"
	BucketDueSoon21 DueBucket = "DueSoon21"
	BucketOnTrack   DueBucket = "OnTrack"
)

// AllBuckets lists the buckets from most to least urgent.
var AllBuckets = []DueBucket{BucketOverdue, BucketDueSoon7, BucketDueSoon21, BucketOnTrack}

// RiskBucket is the coarse urgency derived from priority and due distance.
type RiskBucket string

const (
	RiskCritical RiskBucket = "Critical"
	RiskHigh     RiskBucket = "High"
	RiskMedium   RiskBucket = "Medium"
	RiskLow      RiskBucket = "Low"
)
