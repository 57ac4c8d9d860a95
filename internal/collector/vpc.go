package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// VPCCollector inventories VPC networking primitives: VPCs, subnets,
// security groups, NAT gateways, internet gateways, and Elastic IPs.
// Every record shares service=VPC regardless of its specific type, per
// spec: these are emitted as distinct records under one service label.
type VPCCollector struct{}

func (VPCCollector) Name() string { return "VPC" }

func (VPCCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record

	vpcPaginator := ec2.NewDescribeVpcsPaginator(clients.EC2, &ec2.DescribeVpcsInput{})
	for vpcPaginator.HasMorePages() {
		page, err := vpcPaginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe vpcs: %w", err)
		}
		for _, v := range page.Vpcs {
			out = append(out, Record{
				ResourceID: aws.ToString(v.VpcId),
				Service:    "VPC",
				Type:       "Vpc",
				State:      string(v.State),
				Metadata: map[string]interface{}{
					"cidrBlock": aws.ToString(v.CidrBlock),
					"isDefault": aws.ToBool(v.IsDefault),
				},
			})
		}
	}

	subnetPaginator := ec2.NewDescribeSubnetsPaginator(clients.EC2, &ec2.DescribeSubnetsInput{})
	for subnetPaginator.HasMorePages() {
		page, err := subnetPaginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe subnets: %w", err)
		}
		for _, s := range page.Subnets {
			out = append(out, Record{
				ResourceID: aws.ToString(s.SubnetId),
				Service:    "VPC",
				Type:       "Subnet",
				State:      string(s.State),
				Metadata: map[string]interface{}{
					"vpcId":               aws.ToString(s.VpcId),
					"availabilityZone":    aws.ToString(s.AvailabilityZone),
					"availableIpAddresses": aws.ToInt32(s.AvailableIpAddressCount),
				},
			})
		}
	}

	sgResp, err := clients.EC2.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{})
	if err != nil {
		return nil, fmt.Errorf("describe security groups: %w", err)
	}
	for _, sg := range sgResp.SecurityGroups {
		out = append(out, Record{
			ResourceID: aws.ToString(sg.GroupId),
			Service:    "VPC",
			Type:       "SecurityGroup",
			Name:       aws.ToString(sg.GroupName),
			Metadata: map[string]interface{}{
				"vpcId":       aws.ToString(sg.VpcId),
				"ingressRules": len(sg.IpPermissions),
			},
		})
	}

	natPaginator := ec2.NewDescribeNatGatewaysPaginator(clients.EC2, &ec2.DescribeNatGatewaysInput{})
	for natPaginator.HasMorePages() {
		page, err := natPaginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe nat gateways: %w", err)
		}
		for _, gw := range page.NatGateways {
			out = append(out, Record{
				ResourceID: aws.ToString(gw.NatGatewayId),
				Service:    "VPC",
				Type:       "NatGateway",
				State:      string(gw.State),
				Metadata: map[string]interface{}{
					"vpcId": aws.ToString(gw.VpcId),
				},
			})
		}
	}

	igwResp, err := clients.EC2.DescribeInternetGateways(ctx, &ec2.DescribeInternetGatewaysInput{})
	if err != nil {
		return nil, fmt.Errorf("describe internet gateways: %w", err)
	}
	for _, igw := range igwResp.InternetGateways {
		attachedVpc := ""
		if len(igw.Attachments) > 0 {
			attachedVpc = aws.ToString(igw.Attachments[0].VpcId)
		}
		out = append(out, Record{
			ResourceID: aws.ToString(igw.InternetGatewayId),
			Service:    "VPC",
			Type:       "InternetGateway",
			Metadata: map[string]interface{}{
				"vpcId": attachedVpc,
			},
		})
	}

	addrResp, err := clients.EC2.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
	if err != nil {
		return nil, fmt.Errorf("describe addresses: %w", err)
	}
	for _, addr := range addrResp.Addresses {
		out = append(out, Record{
			ResourceID: aws.ToString(addr.AllocationId),
			Service:    "VPC",
			Type:       "ElasticIP",
			Metadata: map[string]interface{}{
				"publicIp":      aws.ToString(addr.PublicIp),
				"associationId": aws.ToString(addr.AssociationId),
			},
		})
	}

	return out, nil
}
