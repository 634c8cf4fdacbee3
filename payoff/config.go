package payoff

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds every weight and multiplier used by the payoff model.
// It is passed by value so that several configurations can be compared
// side by side.
type Config struct {
	// Opposition Stage I additive bank weights (points out of 100).
	OppWeightPR float64 `yaml:"opp_w_pr" env:"OPP_W_PR"`
	OppWeightCL float64 `yaml:"opp_w_cl" env:"OPP_W_CL"`
	OppWeightMI float64 `yaml:"opp_w_mi" env:"OPP_W_MI"`

	// Opposition Stage II multipliers, applied when a goal fails.
	OppMultBINo  float64 `yaml:"opp_mult_bi_no" env:"OPP_MULT_BI_NO"`
	OppMultISNo  float64 `yaml:"opp_mult_is_no" env:"OPP_MULT_IS_NO"`
	OppMultMDNo  float64 `yaml:"opp_mult_md_no" env:"OPP_MULT_MD_NO"`
	OppMultLoCNo float64 `yaml:"opp_mult_loc_no" env:"OPP_MULT_LOC_NO"`

	RegBase    float64 `yaml:"reg_base" env:"REG_BASE"`
	RegWeightM float64 `yaml:"reg_w_m" env:"REG_W_M"`
	RegWeightR float64 `yaml:"reg_w_r" env:"REG_W_R"`
	RegWeightC float64 `yaml:"reg_w_c" env:"REG_W_C"`
	RegWeightV float64 `yaml:"reg_w_v" env:"REG_W_V"`

	// S at or above this value selects the survival branch.
	RegSurvivalThreshold float64 `yaml:"reg_s_threshold" env:"REG_S_THRESHOLD"`

	IsrBankMax float64 `yaml:"isr_bank_max" env:"ISR_BANK_MAX"`
	IsrBank1W1 float64 `yaml:"isr_bank1_w1" env:"ISR_BANK1_W1"`
	IsrBank1W2 float64 `yaml:"isr_bank1_w2" env:"ISR_BANK1_W2"`
	IsrBank1W3 float64 `yaml:"isr_bank1_w3" env:"ISR_BANK1_W3"`
	IsrBank2W1 float64 `yaml:"isr_bank2_w1" env:"ISR_BANK2_W1"`
	IsrBank2W2 float64 `yaml:"isr_bank2_w2" env:"ISR_BANK2_W2"`
	IsrBlendB1 float64 `yaml:"isr_blend_b1" env:"ISR_BLEND_B1"`
	IsrBlendB2 float64 `yaml:"isr_blend_b2" env:"ISR_BLEND_B2"`
}

// DefaultConfig returns the weights of the reference scenario.
func DefaultConfig() Config {
	return Config{
		OppWeightPR:  30.0,
		OppWeightCL:  30.0,
		OppWeightMI:  40.0,
		OppMultBINo:  0.30,
		OppMultISNo:  0.70,
		OppMultMDNo:  0.40,
		OppMultLoCNo: 0.70,

		RegBase:              50.0,
		RegWeightM:           20.0,
		RegWeightR:           20.0,
		RegWeightC:           10.0,
		RegWeightV:           20.0,
		RegSurvivalThreshold: 0.5,

		IsrBankMax: 100.0,
		IsrBank1W1: 0.30,
		IsrBank1W2: 0.20,
		IsrBank1W3: 0.50,
		IsrBank2W1: 0.30,
		IsrBank2W2: 0.70,
		IsrBlendB1: 0.60,
		IsrBlendB2: 0.40,
	}
}

// LoadConfig starts from DefaultConfig, applies the YAML file at path
// (if path is non-empty) and finally any environment variables named
// after the constants (e.g. OPP_W_PR).
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		glog.V(1).Infof("Loading payoff config from: %v", path)
		buf, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read payoff config")
		}

		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse payoff config %v", path)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse payoff config from environment")
	}

	return cfg, nil
}
