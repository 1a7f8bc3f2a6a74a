package sqlinline

const QInsertDonation = `--sql b88f92a6-148f-4bd0-b091-045b9925da93
insert into donation(donor_id, ngo_id, amount, donation_date, payment_method)
values ($1::bigint, $2::bigint, $3::numeric, current_date, $4::text)
returning donation_id;
`

const QSelectRecentDonations = `--sql f98e9c36-9785-46fe-b4c4-8f5492b13a65
select d.donation_id, d.donor_id, d.ngo_id, d.amount, d.donation_date, d.payment_method,
       don.name as donor_name, n.ngo_name
from donation d
join donor don on d.donor_id = don.donor_id
join ngo n on d.ngo_id = n.ngo_id
order by d.donation_id desc
limit $1::int;
`

const QSelectDonationImpact = `--sql 9cabc002-618a-476e-8770-595a31b83341
select don.name as donor_name,
       d.amount,
       d.donation_date,
       n.ngo_name,
       (select count(*) from beneficiary b where b.ngo_id = n.ngo_id) as beneficiaries_supported
from donation d
join donor don on d.donor_id = don.donor_id
join ngo n on d.ngo_id = n.ngo_id
order by d.donation_id desc, d.donation_date desc;
`
