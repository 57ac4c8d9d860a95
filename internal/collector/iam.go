package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
)

// iamRoleLimit bounds the number of roles collected, for performance on
// accounts with very large role counts.
const iamRoleLimit = 200

// IAMCollector inventories IAM roles, users, and customer-managed
// policies.
type IAMCollector struct{}

func (IAMCollector) Name() string { return "IAM" }

func (IAMCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record

	roleCount := 0
	rolePaginator := iam.NewListRolesPaginator(clients.IAM, &iam.ListRolesInput{})
	for rolePaginator.HasMorePages() && roleCount < iamRoleLimit {
		page, err := rolePaginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list roles: %w", err)
		}
		for _, r := range page.Roles {
			if roleCount >= iamRoleLimit {
				break
			}
			out = append(out, Record{
				ResourceID: aws.ToString(r.RoleName),
				ARN:        aws.ToString(r.Arn),
				Service:    "IAM",
				Type:       "Role",
				Name:       aws.ToString(r.RoleName),
				Metadata: map[string]interface{}{
					"createDate": aws.ToTime(r.CreateDate),
				},
			})
			roleCount++
		}
	}

	userPaginator := iam.NewListUsersPaginator(clients.IAM, &iam.ListUsersInput{})
	for userPaginator.HasMorePages() {
		page, err := userPaginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		for _, u := range page.Users {
			out = append(out, Record{
				ResourceID: aws.ToString(u.UserName),
				ARN:        aws.ToString(u.Arn),
				Service:    "IAM",
				Type:       "User",
				Name:       aws.ToString(u.UserName),
				Metadata: map[string]interface{}{
					"createDate": aws.ToTime(u.CreateDate),
				},
			})
		}
	}

	policyPaginator := iam.NewListPoliciesPaginator(clients.IAM, &iam.ListPoliciesInput{Scope: iamtypes.PolicyScopeTypeLocal})
	for policyPaginator.HasMorePages() {
		page, err := policyPaginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list policies: %w", err)
		}
		for _, p := range page.Policies {
			out = append(out, Record{
				ResourceID: aws.ToString(p.PolicyName),
				ARN:        aws.ToString(p.Arn),
				Service:    "IAM",
				Type:       "Policy",
				Name:       aws.ToString(p.PolicyName),
				Metadata: map[string]interface{}{
					"attachmentCount": aws.ToInt32(p.AttachmentCount),
				},
			})
		}
	}

	return out, nil
}
