package sqlinline

const QCountDonors = `--sql ef17332d-e054-4009-92a4-e4a8d71d5b0b
select count(*) from donor;
`

const QCountDonations = `--sql ff8062ad-eb0a-4b92-bbcd-029f68142062
select count(*) from donation;
`

const QCountEvents = `--sql 44654425-45e2-4e44-971a-83cf3b46a3bb
select count(*) from event;
`

const QCountBeneficiaries = `--sql 43247640-e427-4567-b8aa-36a7bfb6eb87
select count(*) from beneficiary;
`

const QSelectBudgetAudit = `--sql aa2f456c-9392-444b-962e-b4302d3e0958
select audit_id, ngo_id, old_budget, new_budget, change_timestamp
from budget_audit
order by change_timestamp desc;
`
