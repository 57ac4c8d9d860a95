package jobrunner

import (
	"finops/internal/cloudclient"
	"finops/internal/pricing"
)

func pricingEC2(inst cloudclient.EC2Instance) float64 {
	return pricing.EC2MonthlyCost(inst.InstanceType, inst.State)
}

func pricingEBS(v cloudclient.EBSVolume) float64 {
	return pricing.EBSMonthlyCost(v.VolumeType, v.SizeGiB)
}

func pricingS3(b cloudclient.S3Bucket) float64 {
	return pricing.S3MonthlyCost(b.StorageClass, b.SizeBytes)
}

func pricingRDS(db cloudclient.RDSInstance) float64 {
	return pricing.RDSMonthlyCost(db.InstanceClass, db.Status)
}
