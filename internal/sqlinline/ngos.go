package sqlinline

// CalculateNgoEfficiency is a database-side scalar function; a failure inside
// it fails the whole listing.
const QSelectNgosWithEfficiency = `--sql 694b57ef-2951-4dd4-a303-d4afd4049ae1
select n.ngo_id, n.ngo_name, n.city, n.budget,
       CalculateNgoEfficiency(n.ngo_id) as efficiency_score
from ngo n
order by n.ngo_name asc;
`

const QCallRedistributeFunds = `--sql af388f63-d0ab-4f74-9440-cd919eb6eefb
call RedistributeExcessDonations();
`

const QSelectRedistributions = `--sql 5da52a61-3aa1-46e3-8e72-c69be6779c45
select s.ngo_name as from_ngo,
       t.ngo_name as to_ngo,
       fr.amount,
       fr.redistribution_date
from fund_redistribution fr
join ngo s on fr.source_ngo_id = s.ngo_id
join ngo t on fr.target_ngo_id = t.ngo_id
order by fr.redistribution_date desc;
`
