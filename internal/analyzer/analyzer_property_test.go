// Property-based tests covering the invariants every heuristic in this
// package must hold: determinism given (inputs, now), non-negative
// 2-decimal-rounded savings, and no duplicate resource ids within a
// single call.
package analyzer

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var fixedNow = time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC)

func genEC2Usage(idx int) gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("t3.micro", "m5.large", "c5.xlarge", "r5.2xlarge", "unknown.type"),
		gen.OneConstOf("running", "stopped", "terminated"),
		gen.Float64Range(0, 100),
		gen.IntRange(0, 60),
	).Map(func(vals []interface{}) EC2Usage {
		return EC2Usage{
			InstanceID:    fmt.Sprintf("i-%d", idx),
			InstanceType:  vals[0].(string),
			State:         vals[1].(string),
			AvgCPUPercent: vals[2].(float64),
			PeriodDays:    vals[3].(int),
		}
	})
}

func genEC2Usages() gopter.Gen {
	gens := make([]gopter.Gen, 20)
	for i := range gens {
		gens[i] = genEC2Usage(i)
	}
	return gopter.CombineGens(gens...).Map(func(vals []interface{}) []EC2Usage {
		out := make([]EC2Usage, len(vals))
		for i, v := range vals {
			out[i] = v.(EC2Usage)
		}
		return out
	})
}

// TestProperty_EC2Downsize_Deterministic verifies the same input slice
// always yields the identical recommendation set.
func TestProperty_EC2Downsize_Deterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("EC2Downsize is deterministic", prop.ForAll(
		func(usages []EC2Usage) bool {
			first := EC2Downsize(usages)
			second := EC2Downsize(usages)
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if !equalIgnoringMetadata(first[i], second[i]) {
					return false
				}
			}
			return true
		},
		genEC2Usages(),
	))

	properties.TestingRun(t)
}

// equalIgnoringMetadata compares two recommendations on every field except
// Metadata, whose map type makes it incomparable with ==.
func equalIgnoringMetadata(a, b Recommendation) bool {
	return a.Type == b.Type &&
		a.ResourceID == b.ResourceID &&
		a.Description == b.Description &&
		a.EstimatedMonthlySavings == b.EstimatedMonthlySavings &&
		a.Confidence == b.Confidence
}

// TestProperty_EC2Downsize_NonNegativeRoundedSavings verifies every
// emitted recommendation's savings is >= 0 and rounded to 2 decimals.
func TestProperty_EC2Downsize_NonNegativeRoundedSavings(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("EC2Downsize savings are non-negative and rounded to 2 decimals", prop.ForAll(
		func(usages []EC2Usage) bool {
			for _, rec := range EC2Downsize(usages) {
				if rec.EstimatedMonthlySavings < 0 {
					return false
				}
				if !isRoundedTo2(rec.EstimatedMonthlySavings) {
					return false
				}
			}
			return true
		},
		genEC2Usages(),
	))

	properties.TestingRun(t)
}

// TestProperty_EC2Downsize_NoDuplicates verifies that distinct input
// instance ids never produce duplicate resourceId output rows.
func TestProperty_EC2Downsize_NoDuplicates(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("EC2Downsize never emits duplicate resource ids", prop.ForAll(
		func(usages []EC2Usage) bool {
			seenOutputs := map[string]bool{}
			for _, rec := range EC2Downsize(usages) {
				if seenOutputs[rec.ResourceID] {
					return false
				}
				seenOutputs[rec.ResourceID] = true
			}
			return true
		},
		genEC2Usages(),
	))

	properties.TestingRun(t)
}

func isRoundedTo2(v float64) bool {
	return math.Abs(v*100-math.Round(v*100)) < 1e-9
}

func genEBSVolume(idx int) gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("gp2", "gp3", "io1", "io2", "st1", "sc1", "unknown"),
		gen.OneConstOf("available", "in-use"),
		gen.Float64Range(0, 16000),
		gen.IntRange(0, 2),
		gen.IntRange(0, 400),
	).Map(func(vals []interface{}) EBSVolume {
		ageDays := vals[4].(int)
		return EBSVolume{
			VolumeID:        fmt.Sprintf("vol-%d", idx),
			VolumeType:      vals[0].(string),
			State:           vals[1].(string),
			SizeGiB:         vals[2].(float64),
			AttachmentCount: vals[3].(int),
			CreateTime:      fixedNow.Add(-time.Duration(ageDays) * 24 * time.Hour),
		}
	})
}

func genEBSVolumes() gopter.Gen {
	gens := make([]gopter.Gen, 20)
	for i := range gens {
		gens[i] = genEBSVolume(i)
	}
	return gopter.CombineGens(gens...).Map(func(vals []interface{}) []EBSVolume {
		out := make([]EBSVolume, len(vals))
		for i, v := range vals {
			out[i] = v.(EBSVolume)
		}
		return out
	})
}

// TestProperty_EBSOrphan_NonNegativeRoundedSavings covers the other pure
// analyzer family (the one taking an explicit `now`) for the same
// non-negative/rounded invariant.
func TestProperty_EBSOrphan_NonNegativeRoundedSavings(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("EBSOrphan savings are non-negative and rounded to 2 decimals", prop.ForAll(
		func(volumes []EBSVolume) bool {
			for _, rec := range EBSOrphan(volumes, fixedNow) {
				if rec.EstimatedMonthlySavings < 0 {
					return false
				}
				if !isRoundedTo2(rec.EstimatedMonthlySavings) {
					return false
				}
			}
			return true
		},
		genEBSVolumes(),
	))

	properties.TestingRun(t)
}

// TestProperty_EBSOrphan_Deterministic verifies EBSOrphan is a pure
// function of (volumes, now): no hidden clock read.
func TestProperty_EBSOrphan_Deterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("EBSOrphan is deterministic given the same now", prop.ForAll(
		func(volumes []EBSVolume) bool {
			first := EBSOrphan(volumes, fixedNow)
			second := EBSOrphan(volumes, fixedNow)
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if !equalIgnoringMetadata(first[i], second[i]) {
					return false
				}
			}
			return true
		},
		genEBSVolumes(),
	))

	properties.TestingRun(t)
}
