// Package groundcost optionally calibrates the ground-compute baseline
// cost (spec §4.8's "base_ground" figure) against live AWS Pricing API
// data, adapted from the teacher's EC2+Pricing discovery provider. Unlike
// the teacher, OCSE has no cluster to discover — the EC2 service client is
// dropped entirely, and only the Pricing client survives, repurposed to
// look up GPU-instance on-demand pricing as a calibration input.
package groundcost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
)

const credentialCheckTimeout = 3 * time.Second
const cacheTTL = 24 * time.Hour

var ErrAWSCredentials = errors.New("groundcost: AWS credentials not found; set AWS_PROFILE, run 'aws sso login', or configure ~/.aws/credentials")

// pricingAPI is a minimal interface for the Pricing API calls used here.
type pricingAPI interface {
	GetProducts(ctx context.Context, params *pricing.GetProductsInput, optFns ...func(*pricing.Options)) (*pricing.GetProductsOutput, error)
}

// Baseline is the calibrated ground-compute cost figure persisted to cache.
type Baseline struct {
	USDPerPFLOP     float64   `json:"usdPerPFLOP"`
	InstanceFamily  string    `json:"instanceFamily"`
	CalibratedAt    time.Time `json:"calibratedAt"`
}

// Provider calibrates the ground baseline cost against the AWS Pricing API
// (GPU on-demand pricing in us-east-1), falling back to the caller-supplied
// default when no credentials are available — this calibration is optional
// enrichment, never a hard dependency of the kernel.
type Provider struct {
	client pricingAPI
	cache  *FileCache
}

// NewProvider creates a provider using the default AWS SDK config chain.
// The Pricing API is only available in us-east-1 regardless of the
// simulation's notional ground region.
func NewProvider(ctx context.Context, cacheDir string) (*Provider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("us-east-1"),
		awsconfig.WithEC2IMDSClientEnableState(imds.ClientDisabled),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAWSCredentials, err)
	}

	credCtx, cancel := context.WithTimeout(ctx, credentialCheckTimeout)
	defer cancel()
	if _, err := cfg.Credentials.Retrieve(credCtx); err != nil {
		return nil, ErrAWSCredentials
	}

	var cache *FileCache
	if cacheDir != "" {
		cache = NewFileCache(cacheDir)
	}

	return &Provider{client: pricing.NewFromConfig(cfg), cache: cache}, nil
}

// CalibrateBaseline returns a cached baseline if fresh, otherwise queries
// the Pricing API for the given instance family's on-demand hourly rate and
// derives a $/PFLOP figure from the family's advertised FLOPs/hour.
func (p *Provider) CalibrateBaseline(ctx context.Context, instanceFamily string, pflopsPerHour float64) (Baseline, error) {
	cacheKey := "groundcost_" + instanceFamily
	var cached Baseline
	if p.cache != nil && p.cache.Get(cacheKey, cacheTTL, &cached) {
		return cached, nil
	}

	out, err := p.client.GetProducts(ctx, &pricing.GetProductsInput{
		ServiceCode: awsString("AmazonEC2"),
		Filters: []types.Filter{
			{Type: types.FilterTypeTermMatch, Field: awsString("instanceType"), Value: awsString(instanceFamily)},
			{Type: types.FilterTypeTermMatch, Field: awsString("operatingSystem"), Value: awsString("Linux")},
			{Type: types.FilterTypeTermMatch, Field: awsString("tenancy"), Value: awsString("Shared")},
		},
	})
	if err != nil {
		return Baseline{}, fmt.Errorf("groundcost: querying pricing API: %w", err)
	}

	hourlyUSD, err := extractOnDemandHourly(out.PriceList)
	if err != nil {
		return Baseline{}, err
	}
	if pflopsPerHour <= 0 {
		return Baseline{}, fmt.Errorf("groundcost: pflopsPerHour must be positive, got %v", pflopsPerHour)
	}

	baseline := Baseline{
		USDPerPFLOP:    hourlyUSD / pflopsPerHour,
		InstanceFamily: instanceFamily,
		CalibratedAt:   time.Now(),
	}
	if p.cache != nil {
		_ = p.cache.Set(cacheKey, baseline)
	}
	return baseline, nil
}

// pricingDocument is the minimal shape needed out of the Pricing API's
// opaque JSON price list documents.
type pricingDocument struct {
	Terms struct {
		OnDemand map[string]struct {
			PriceDimensions map[string]struct {
				PricePerUnit struct {
					USD string `json:"USD"`
				} `json:"pricePerUnit"`
			} `json:"priceDimensions"`
		} `json:"OnDemand"`
	} `json:"terms"`
}

func extractOnDemandHourly(priceList []string) (float64, error) {
	for _, raw := range priceList {
		var doc pricingDocument
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			continue
		}
		for _, term := range doc.Terms.OnDemand {
			for _, dim := range term.PriceDimensions {
				var usd float64
				if _, err := fmt.Sscanf(dim.PricePerUnit.USD, "%f", &usd); err == nil && usd > 0 {
					return usd, nil
				}
			}
		}
	}
	return 0, fmt.Errorf("groundcost: no on-demand price found in response")
}

func awsString(s string) *string { return &s }
