package filters

import (
	"strings"

	"github.com/jonathan/job-relevance/internal/types"
)

// AzureFavoringProfiles lists the search profiles whose tech stack centers on
// Azure. The cloud bias filter is active only for these; the backend profile
// is provider-neutral and exempt.
var AzureFavoringProfiles = []types.Profile{
	types.ProfileCore,
	types.ProfileCSharpAzure,
	types.ProfileLegacyWeb,
}

// awsServices are branded AWS service mentions counted as disfavored signal.
var awsServices = []string{
	"aws lambda",
	"aws s3",
	"aws dynamodb",
	"aws ec2",
	"aws sqs",
	"aws sns",
	"aws cloudformation",
	"aws glue",
	"aws ecs",
	"aws eks",
	"amazon web services",
}

// azureServices are branded Azure service mentions counted as favored signal.
var azureServices = []string{
	"azure functions",
	"azure service bus",
	"azure storage",
	"azure devops",
	"azure sql",
	"azure app service",
	"azure cosmos",
	"azure kubernetes",
	"azure data factory",
	"azure event hub",
}

// CloudProviderBiasFilter blocks postings dominated by AWS services when the
// active profile favors Azure. It is inert for any profile outside its
// configured list, including unknown profiles.
type CloudProviderBiasFilter struct {
	activeProfiles map[types.Profile]bool
}

// NewCloudProviderBiasFilter constructs the filter, active for the given profiles.
func NewCloudProviderBiasFilter(profiles ...types.Profile) *CloudProviderBiasFilter {
	active := make(map[types.Profile]bool, len(profiles))
	for _, p := range profiles {
		active[p] = true
	}
	return &CloudProviderBiasFilter{activeProfiles: active}
}

// Name identifies the filter in verdicts and stats.
func (f *CloudProviderBiasFilter) Name() string {
	return "cloud_provider_bias"
}

// Evaluate counts branded AWS mentions against branded Azure mentions and
// blocks when AWS dominates. A posting naming Azure as primary with incidental
// AWS exposure is allowed.
func (f *CloudProviderBiasFilter) Evaluate(job types.JobPosting, profile types.Profile) types.FilterVerdict {
	if !f.activeProfiles[profile] {
		return types.Allow()
	}

	title := strings.ToLower(job.Title)
	text := strings.ToLower(job.Title + " " + job.Description)
	if strings.TrimSpace(text) == "" {
		return types.Allow()
	}

	awsCount := countMentions(text, awsServices)
	azureCount := countMentions(text, azureServices)

	// An AWS-titled role with no Azure presence at all is AWS-focused even
	// without branded service mentions in the body.
	if strings.Contains(title, "aws") && azureCount == 0 {
		return types.Block("AWS-focused role for an Azure profile")
	}

	if awsCount > azureCount && awsCount > 0 {
		return types.Block("AWS-focused role for an Azure profile")
	}

	return types.Allow()
}

func countMentions(text string, services []string) int {
	count := 0
	for _, s := range services {
		count += strings.Count(text, s)
	}
	return count
}
