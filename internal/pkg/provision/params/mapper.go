package params

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ProjectReef/reef/internal/pkg/provision/refdata"
	"github.com/ProjectReef/reef/internal/pkg/provision/vro"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
)

// Provider answer names carrying the engine connection settings.
const (
	AnswerAccessID  = "access_id"
	AnswerEngineURL = "vrealize_host"
	AnswerUsername  = "username"
	AnswerSecretKey = "secret_key"
)

// InvalidAnswerValueError reports an answer whose value could not be coerced
// into the type its target parameter requires.
type InvalidAnswerValueError struct {
	Answer string
	Value  string
}

func (e *InvalidAnswerValueError) Error() string {
	return fmt.Sprintf("invalid value %q for answer %q", e.Value, e.Answer)
}

// Credentials extracts the engine connection credentials from the
// provider-level answers. Missing answers yield empty fields rather than an
// error; the engine client rejects incomplete credentials on submit.
func Credentials(providerAnswers models.AnswerSet) vro.Credentials {
	return vro.Credentials{
		ID:       providerAnswers.Get(AnswerAccessID),
		URL:      providerAnswers.Get(AnswerEngineURL),
		Username: providerAnswers.Get(AnswerUsername),
		Password: providerAnswers.Get(AnswerSecretKey),
	}
}

// transform turns a raw answer value into the typed value of its target
// parameter.
type transform func(ctx context.Context, r refdata.Resolver, value string) (interface{}, error)

func copyValue(_ context.Context, _ refdata.Resolver, value string) (interface{}, error) {
	return value, nil
}

func resolve(category refdata.Category) transform {
	return func(ctx context.Context, r refdata.Resolver, value string) (interface{}, error) {
		return r.Resolve(ctx, category, value)
	}
}

func toInt(name string) transform {
	return func(_ context.Context, _ refdata.Resolver, value string) (interface{}, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, &InvalidAnswerValueError{Answer: name, Value: value}
		}
		return n, nil
	}
}

func yesToBool(_ context.Context, _ refdata.Resolver, value string) (interface{}, error) {
	return value == "yes", nil
}

func tierString(_ context.Context, _ refdata.Resolver, value string) (interface{}, error) {
	return "Tier" + value, nil
}

type mapping struct {
	answer    string
	parameter string
	transform transform
}

// productMappings cover the product-level answers; each one is an indirect
// lookup against reference data.
var productMappings = []mapping{
	{"data_center", "dataCenter", resolve(refdata.CategoryDataCenter)},
	{"os", "operatingSystem", resolve(refdata.CategoryOSImage)},
	{"template", "templateName", resolve(refdata.CategoryTemplate)},
}

// serviceMappings is the fixed answer-name to target-parameter table for
// service-level answers. Names outside the table are inert.
var serviceMappings = []mapping{
	{"environment_type", "lifeCycleStatus", resolve(refdata.CategoryProdStatus)},
	{"buid", "serverDB_BUID", resolve(refdata.CategoryBusinessUnit)},
	{"cost_center_id", "serverDB_CCID", resolve(refdata.CategoryCostCenter)},
	{"domain", "domainString", resolve(refdata.CategoryDomain)},
	{"backup_nic_required", "backupRequired", yesToBool},
	{"primary_role", "serverRole", copyValue},
	{"char3_server_name", "projectIdentifier", copyValue},
	{"vcpus", "vCPUS", copyValue},
	{"ram_in_gb", "vRAM", copyValue},
	{"email_id", "notificationEmail", copyValue},
	{"description", "serverDescription", copyValue},
	{"disk_1_size", "secondDiskSize", toInt("disk_1_size")},
	{"disk_2_size", "thirdDiskSize", toInt("disk_2_size")},
	{"disk_3_size", "fourthDiskSize", toInt("disk_3_size")},
	{"storage_performace_tier", "storageTier", tierString},
}

// diskParameters must never reach the engine unset; absent disk-size answers
// default to 0.
var diskParameters = []string{"secondDiskSize", "thirdDiskSize", "fourthDiskSize"}

// constantParameters are not derived from any answer.
var constantParameters = vro.Parameters{
	"needXtraDisks":            true,
	"serverContact":            "serverContact",
	"contactSearchString":      "SearchString",
	"serverDBCostCenterString": "CenterString",
}

// Mapper builds the engine parameter set of one provisioning job from the
// product- and service-level answers.
type Mapper struct {
	resolver refdata.Resolver
}

func New(resolver refdata.Resolver) *Mapper {
	return &Mapper{resolver: resolver}
}

// Map produces the complete parameter set for one job. Resolver failures and
// coercion failures abort the mapping; nothing is submitted on bad input.
func (m *Mapper) Map(ctx context.Context, productAnswers, serviceAnswers models.AnswerSet) (vro.Parameters, error) {
	set := vro.Parameters{}

	if err := apply(ctx, m.resolver, set, productMappings, productAnswers); err != nil {
		return nil, err
	}
	if err := apply(ctx, m.resolver, set, serviceMappings, serviceAnswers); err != nil {
		return nil, err
	}

	for name, value := range constantParameters {
		set[name] = value
	}

	for _, name := range diskParameters {
		if _, ok := set[name]; !ok {
			set[name] = 0
		}
	}

	return set, nil
}

func apply(ctx context.Context, r refdata.Resolver, set vro.Parameters, mappings []mapping, answers models.AnswerSet) error {
	for _, ans := range answers {
		for _, m := range mappings {
			if m.answer != ans.Name {
				continue
			}
			value, err := m.transform(ctx, r, ans.Value)
			if err != nil {
				return fmt.Errorf("error mapping answer %q: %w", ans.Name, err)
			}
			set[m.parameter] = value
			break
		}
	}
	return nil
}
