package domain

import "time"

// InvestmentType names a treasury allocation target.
type InvestmentType string

const (
	InvestmentFixedIncome   InvestmentType = "fixed_income"   // 60% allocation
	InvestmentMoneyMarket   InvestmentType = "money_market"   // 30% allocation
	InvestmentEmergencyFund InvestmentType = "emergency_fund" // 10% allocation
)

// TreasuryInvestment is immutable after creation. Current value is computed
// on read from principal, rate and elapsed time; it is never stored back.
type TreasuryInvestment struct {
	InvestmentID     string         `json:"id" dynamodbav:"investment_id"`
	PrincipalAmount  uint64         `json:"principal_amount" dynamodbav:"principal_amount"`
	Type             InvestmentType `json:"investment_type" dynamodbav:"investment_type"`
	AnnualReturnRate float64        `json:"annual_return_rate" dynamodbav:"annual_return_rate"`
	MaturityDate     time.Time      `json:"maturity_date" dynamodbav:"maturity_date"`
	CurrentValue     uint64         `json:"current_value" dynamodbav:"current_value"`
	CreatedAt        time.Time      `json:"created" dynamodbav:"created_at"`
}
