package analyzer

import (
	"fmt"
	"math"

	"finops/internal/pricing"
	"finops/internal/store/model"
)

// lambdaOversizedMinMemoryMB and lambdaOversizedMaxDurationMs gate the
// oversized heuristic to functions with headroom to shrink.
const (
	lambdaOversizedMinMemoryMB    = 512.0
	lambdaOversizedMaxDurationMs  = 100.0
	lambdaOversizedMinSavingsUSD  = 0.50
	lambdaOversizedMinMemoryFloor = 128.0
)

// LambdaUnused flags functions with zero observed invocations: the full
// allocated memory/timeout envelope is pure waste.
func LambdaUnused(functions []LambdaFunction) []Recommendation {
	var recs []Recommendation
	for _, f := range functions {
		if f.AvgInvocationsPerDay != 0 {
			continue
		}

		savings := (f.MemoryMB / 1024) * f.TimeoutSec * 100 * pricing.LambdaPricePerGBSecond * 30

		recs = append(recs, Recommendation{
			Type:                    model.RecommendationLambdaUnused,
			ResourceID:              f.FunctionName,
			Description:             fmt.Sprintf("Lambda function %s has had zero invocations; consider removing it.", f.FunctionName),
			EstimatedMonthlySavings: roundTo2(savings),
			Confidence:              model.ConfidenceHigh,
			Metadata: map[string]interface{}{
				"memoryMB":   f.MemoryMB,
				"timeoutSec": f.TimeoutSec,
			},
		})
	}
	return recs
}

// LambdaOversized flags invoked functions whose allocated memory vastly
// exceeds what their observed duration needs, emitting only when the
// estimated savings clear a minimum-significance threshold.
func LambdaOversized(functions []LambdaFunction) []Recommendation {
	var recs []Recommendation
	for _, f := range functions {
		if f.AvgInvocationsPerDay <= 0 {
			continue
		}
		if f.MemoryMB < lambdaOversizedMinMemoryMB {
			continue
		}
		if f.AvgDurationMs >= lambdaOversizedMaxDurationMs {
			continue
		}

		rightsizedMemoryMB := math.Max(lambdaOversizedMinMemoryFloor, math.Ceil(f.MemoryMB/3))

		currentGBs := pricing.LambdaMonthlyGBSeconds(f.AvgInvocationsPerDay, f.AvgDurationMs, f.MemoryMB)
		rightsizedGBs := pricing.LambdaMonthlyGBSeconds(f.AvgInvocationsPerDay, f.AvgDurationMs, rightsizedMemoryMB)
		savings := (currentGBs - rightsizedGBs) * pricing.LambdaPricePerGBSecond

		if savings <= lambdaOversizedMinSavingsUSD {
			continue
		}

		recs = append(recs, Recommendation{
			Type:                    model.RecommendationLambdaOversized,
			ResourceID:              f.FunctionName,
			Description:             fmt.Sprintf("Lambda function %s is allocated %.0fMB but runs in %.0fms; consider reducing memory to %.0fMB.", f.FunctionName, f.MemoryMB, f.AvgDurationMs, rightsizedMemoryMB),
			EstimatedMonthlySavings: roundTo2(savings),
			Confidence:              model.ConfidenceMedium,
			Metadata: map[string]interface{}{
				"currentMemoryMB":    f.MemoryMB,
				"rightsizedMemoryMB": rightsizedMemoryMB,
				"avgDurationMs":      f.AvgDurationMs,
			},
		})
	}
	return recs
}
