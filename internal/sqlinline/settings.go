package sqlinline

const QSelectHeroImage = `--sql 9e73eb16-48f6-4b9c-9261-0c18aa6a8a0d
select hero_image
from website_settings
where id = 1;
`

const QUpsertHeroImage = `--sql 7f2c1d35-6a84-4b0e-bb1f-52a2c3f4f7d1
insert into website_settings(id, hero_image)
values (1, $1::bytea)
on conflict (id) do update
set hero_image = excluded.hero_image;
`
